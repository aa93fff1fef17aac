// AngelaMos | 2026
// client.go

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carterperez-dev/petal-commerce/internal/config"
)

// Client talks to the PayPal OAuth endpoint with client credentials.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewClient(cfg config.PayPalConfig) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

// FetchToken requests a fresh access token and stamps its expiry instant
// from the expires_in the gateway reports.
func (c *Client) FetchToken(ctx context.Context) (*AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	endpoint := c.baseURL + "/v1/oauth2/token"

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf(
			"request token: gateway returned %d: %s",
			resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	var token AccessToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("decode token response: empty access_token")
	}

	token.ExpiresAt = time.Now().Add(
		time.Duration(token.ExpiresIn) * time.Second,
	)

	return &token, nil
}
