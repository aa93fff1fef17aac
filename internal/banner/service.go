// AngelaMos | 2026
// service.go

package banner

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore is the slice of Storage the service needs.
type ObjectStore interface {
	Upload(
		ctx context.Context,
		objectKey, contentType string,
		reader io.Reader,
		size int64,
	) (string, error)
	Remove(ctx context.Context, objectKey string) error
}

type Service struct {
	repo  Repository
	store ObjectStore
}

func NewService(repo Repository, store ObjectStore) *Service {
	return &Service{
		repo:  repo,
		store: store,
	}
}

// Upload stores the image under "<generated id>-<original filename>" and
// persists a banner row pointing at the resulting URL.
func (s *Service) Upload(
	ctx context.Context,
	filename, contentType string,
	reader io.Reader,
	size int64,
) (*Banner, error) {
	id := uuid.New().String()
	objectKey := id + "-" + sanitizeFilename(filename)

	imageURL, err := s.store.Upload(ctx, objectKey, contentType, reader, size)
	if err != nil {
		return nil, err
	}

	banner := &Banner{
		ID:        id,
		ImageURL:  imageURL,
		ObjectKey: objectKey,
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		//nolint:errcheck // best-effort cleanup of the orphaned object
		_ = s.store.Remove(ctx, objectKey)
		return nil, err
	}

	return banner, nil
}

// ListActive returns the banners currently shown on the storefront.
// Soft-deleted banners are excluded by the repository query.
func (s *Service) ListActive(ctx context.Context) ([]Banner, error) {
	return s.repo.ListActive(ctx)
}

// Delete soft deletes the banner row. The stored object is kept so existing
// CDN references keep resolving.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")

	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}

	return name
}
