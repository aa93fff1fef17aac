// AngelaMos | 2026
// jwt_test.go

package auth_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/auth"
	"github.com/carterperez-dev/petal-commerce/internal/config"
	"github.com/carterperez-dev/petal-commerce/internal/core"
)

func newTestManager(t *testing.T) *auth.JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, auth.GenerateKeyPair(privatePath, publicPath))

	manager, err := auth.NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 7 * 24 * time.Hour,
		Issuer:             "petal-commerce",
		Audience:           "petal-commerce-api",
	})
	require.NoError(t, err)

	return manager
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	claims := auth.AccessTokenClaims{
		UserID:       uuid.New().String(),
		Email:        "test@example.com",
		Role:         "user",
		TokenVersion: 3,
	}

	token, err := manager.CreateAccessToken(claims)
	require.NoError(t, err)

	parsed, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
	assert.Equal(t, claims.TokenVersion, parsed.TokenVersion)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.VerifyAccessToken(
		context.Background(),
		"not-a-token",
	)

	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenForUser_Match(t *testing.T) {
	manager := newTestManager(t)

	user := &auth.UserInfo{
		ID:           uuid.New().String(),
		Email:        "test@example.com",
		Role:         "user",
		TokenVersion: 1,
	}

	token, err := manager.CreateAccessToken(auth.AccessTokenClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	require.NoError(t, err)

	claims, err := manager.VerifyTokenForUser(context.Background(), token, user)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
}

func TestVerifyTokenForUser_SubjectMismatch(t *testing.T) {
	manager := newTestManager(t)

	token, err := manager.CreateAccessToken(auth.AccessTokenClaims{
		UserID:       uuid.New().String(),
		Email:        "test@example.com",
		Role:         "user",
		TokenVersion: 1,
	})
	require.NoError(t, err)

	otherUser := &auth.UserInfo{
		ID:           uuid.New().String(),
		Email:        "test@example.com",
		TokenVersion: 1,
	}

	_, err = manager.VerifyTokenForUser(context.Background(), token, otherUser)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenForUser_StaleVersion(t *testing.T) {
	manager := newTestManager(t)

	userID := uuid.New().String()
	token, err := manager.CreateAccessToken(auth.AccessTokenClaims{
		UserID:       userID,
		Email:        "test@example.com",
		Role:         "user",
		TokenVersion: 1,
	})
	require.NoError(t, err)

	rotated := &auth.UserInfo{
		ID:           userID,
		Email:        "test@example.com",
		TokenVersion: 2,
	}

	_, err = manager.VerifyTokenForUser(context.Background(), token, rotated)
	require.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestRefreshTokenHashVerification(t *testing.T) {
	manager := newTestManager(t)

	data, err := manager.CreateRefreshToken(uuid.New().String(), "")
	require.NoError(t, err)

	assert.NotEmpty(t, data.FamilyID)
	assert.True(t, manager.VerifyRefreshTokenHash(data.Token, data.Hash))
	assert.False(t, manager.VerifyRefreshTokenHash("tampered", data.Hash))
}
