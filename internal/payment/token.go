// AngelaMos | 2026
// token.go

package payment

import (
	"time"
)

// AccessToken is a PayPal client-credentials token together with the expiry
// instant computed when the token was received.
type AccessToken struct {
	Scope       string    `json:"scope"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	AppID       string    `json:"app_id"`
	ExpiresIn   int64     `json:"expires_in"`
	Nonce       string    `json:"nonce"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// expirySlack keeps us from presenting a token that expires mid-request.
const expirySlack = 30 * time.Second

func (t *AccessToken) IsExpired(now time.Time) bool {
	return !now.Add(expirySlack).Before(t.ExpiresAt)
}
