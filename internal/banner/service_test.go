// AngelaMos | 2026
// service_test.go

package banner_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/banner"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *banner.Banner) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetByID(
	ctx context.Context,
	id string,
) (*banner.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banner.Banner), args.Error(1)
}

func (m *MockRepository) ListActive(
	ctx context.Context,
) ([]banner.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]banner.Banner), args.Error(1)
}

func (m *MockRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(
	ctx context.Context,
	objectKey, contentType string,
	reader io.Reader,
	size int64,
) (string, error) {
	args := m.Called(ctx, objectKey, contentType, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Remove(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

func TestUpload_KeyCombinesIDAndFilename(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	svc := banner.NewService(repo, store)

	var capturedKey string
	store.On(
		"Upload",
		mock.Anything,
		mock.AnythingOfType("string"),
		"image/png",
		mock.Anything,
		int64(42),
	).Run(func(args mock.Arguments) {
		capturedKey = args.String(1)
	}).Return("https://cdn.example.com/banners/key", nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*banner.Banner")).
		Return(nil)

	created, err := svc.Upload(
		context.Background(),
		"spring sale.png",
		"image/png",
		strings.NewReader("data"),
		42,
	)

	require.NoError(t, err)
	assert.True(
		t,
		strings.HasPrefix(capturedKey, created.ID+"-"),
		"key %q must start with the banner id",
		capturedKey,
	)
	assert.True(t, strings.HasSuffix(capturedKey, "spring_sale.png"))
	assert.Equal(t, "https://cdn.example.com/banners/key", created.ImageURL)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestUpload_RemovesObjectWhenPersistFails(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	svc := banner.NewService(repo, store)

	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/banners/key", nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))
	store.On("Remove", mock.Anything, mock.AnythingOfType("string")).
		Return(nil)

	_, err := svc.Upload(
		context.Background(),
		"banner.jpg",
		"image/jpeg",
		strings.NewReader("data"),
		4,
	)

	require.Error(t, err)
	store.AssertCalled(t, "Remove", mock.Anything, mock.AnythingOfType("string"))
}

func TestListActive_OnlyReturnsLiveBanners(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	svc := banner.NewService(repo, store)

	live := []banner.Banner{
		{ID: "a", ImageURL: "https://cdn.example.com/banners/a.png"},
		{ID: "b", ImageURL: "https://cdn.example.com/banners/b.png"},
	}

	repo.On("ListActive", mock.Anything).Return(live, nil)

	banners, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, banners, 2)
	for _, b := range banners {
		assert.Nil(t, b.DeletedAt)
	}
}

func TestBannerIsDeleted(t *testing.T) {
	now := time.Now()
	assert.False(t, (&banner.Banner{}).IsDeleted())
	assert.True(t, (&banner.Banner{DeletedAt: &now}).IsDeleted())
}
