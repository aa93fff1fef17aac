// AngelaMos | 2026
// service.go

package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/petal-commerce/internal/auth"
	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/middleware"
)

// UserDirectory resolves accounts by email for the review ownership checks.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*auth.UserInfo, error)
}

// TokenVerifier checks that a raw access token verifies and belongs to the
// given user.
type TokenVerifier interface {
	VerifyTokenForUser(
		ctx context.Context,
		tokenString string,
		user *auth.UserInfo,
	) (*middleware.AccessTokenClaims, error)
}

type Service struct {
	repo   Repository
	users  UserDirectory
	tokens TokenVerifier
}

func NewService(
	repo Repository,
	users UserDirectory,
	tokens TokenVerifier,
) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		tokens: tokens,
	}
}

// Create persists a review only after three checks pass in order: the
// request email resolves to an account, the bearer token verifies for that
// account, and the token's email claim matches the request email exactly.
// Any failure returns before a single row is written.
func (s *Service) Create(
	ctx context.Context,
	tokenString string,
	req CreateReviewRequest,
) (*Review, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("create review: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	claims, err := s.tokens.VerifyTokenForUser(ctx, tokenString, user)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", core.ErrUnauthorized)
	}

	if claims.Email != req.Email {
		return nil, fmt.Errorf(
			"create review: email claim mismatch: %w",
			core.ErrUnauthorized,
		)
	}

	review := &Review{
		ID:        uuid.New().String(),
		ProductID: req.ProductID,
		UserID:    user.ID,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) ListByProduct(
	ctx context.Context,
	productID string,
) ([]Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}
