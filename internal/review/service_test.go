// AngelaMos | 2026
// service_test.go

package review_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/auth"
	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/middleware"
	"github.com/carterperez-dev/petal-commerce/internal/review"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) ListByProduct(
	ctx context.Context,
	productID string,
) ([]review.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.Review), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.UserInfo), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyTokenForUser(
	ctx context.Context,
	tokenString string,
	user *auth.UserInfo,
) (*middleware.AccessTokenClaims, error) {
	args := m.Called(ctx, tokenString, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.AccessTokenClaims), args.Error(1)
}

func validRequest() review.CreateReviewRequest {
	return review.CreateReviewRequest{
		Email:     "test@example.com",
		ProductID: uuid.New().String(),
		Comment:   "Great product!",
		Rating:    5,
	}
}

func TestCreateReview_Success(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserDirectory)
	tokens := new(MockTokenVerifier)
	svc := review.NewService(repo, users, tokens)

	req := validRequest()
	userInfo := &auth.UserInfo{
		ID:    uuid.New().String(),
		Email: req.Email,
	}

	users.On("GetByEmail", mock.Anything, req.Email).Return(userInfo, nil)
	tokens.On("VerifyTokenForUser", mock.Anything, "token-abc", userInfo).
		Return(&middleware.AccessTokenClaims{
			UserID: userInfo.ID,
			Email:  req.Email,
		}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*review.Review")).
		Return(nil)

	created, err := svc.Create(context.Background(), "token-abc", req)

	require.NoError(t, err)
	assert.Equal(t, userInfo.ID, created.UserID)
	assert.Equal(t, req.ProductID, created.ProductID)
	assert.Equal(t, "Great product!", created.Comment)
	assert.Equal(t, 5, created.Rating)
	assert.NotEmpty(t, created.ID)

	repo.AssertExpectations(t)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestCreateReview_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserDirectory)
	tokens := new(MockTokenVerifier)
	svc := review.NewService(repo, users, tokens)

	req := validRequest()

	users.On("GetByEmail", mock.Anything, req.Email).
		Return(nil, core.ErrNotFound)

	_, err := svc.Create(context.Background(), "token-abc", req)

	require.ErrorIs(t, err, core.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(
		t,
		"VerifyTokenForUser",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	)
}

func TestCreateReview_InvalidToken(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserDirectory)
	tokens := new(MockTokenVerifier)
	svc := review.NewService(repo, users, tokens)

	req := validRequest()
	userInfo := &auth.UserInfo{
		ID:    uuid.New().String(),
		Email: req.Email,
	}

	users.On("GetByEmail", mock.Anything, req.Email).Return(userInfo, nil)
	tokens.On("VerifyTokenForUser", mock.Anything, "bad-token", userInfo).
		Return(nil, core.ErrTokenInvalid)

	_, err := svc.Create(context.Background(), "bad-token", req)

	require.ErrorIs(t, err, core.ErrUnauthorized)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_EmailClaimMismatch(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserDirectory)
	tokens := new(MockTokenVerifier)
	svc := review.NewService(repo, users, tokens)

	req := validRequest()
	userInfo := &auth.UserInfo{
		ID:    uuid.New().String(),
		Email: req.Email,
	}

	users.On("GetByEmail", mock.Anything, req.Email).Return(userInfo, nil)
	tokens.On("VerifyTokenForUser", mock.Anything, "token-abc", userInfo).
		Return(&middleware.AccessTokenClaims{
			UserID: userInfo.ID,
			Email:  "other@example.com",
		}, nil)

	_, err := svc.Create(context.Background(), "token-abc", req)

	require.ErrorIs(t, err, core.ErrUnauthorized)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_EmailClaimCaseSensitive(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserDirectory)
	tokens := new(MockTokenVerifier)
	svc := review.NewService(repo, users, tokens)

	req := validRequest()
	userInfo := &auth.UserInfo{
		ID:    uuid.New().String(),
		Email: req.Email,
	}

	users.On("GetByEmail", mock.Anything, req.Email).Return(userInfo, nil)
	tokens.On("VerifyTokenForUser", mock.Anything, "token-abc", userInfo).
		Return(&middleware.AccessTokenClaims{
			UserID: userInfo.ID,
			Email:  "Test@example.com",
		}, nil)

	_, err := svc.Create(context.Background(), "token-abc", req)

	require.ErrorIs(t, err, core.ErrUnauthorized)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
