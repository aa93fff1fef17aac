// AngelaMos | 2026
// storage.go

package banner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/carterperez-dev/petal-commerce/internal/config"
	"github.com/carterperez-dev/petal-commerce/internal/core"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// Storage stores banner images in an S3-compatible bucket.
type Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewStorage(cfg config.StorageConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.BannerBucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// EnsureBucket creates the banner bucket if it does not exist yet. Called
// once at startup.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}

	if !exists {
		err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	return nil
}

// Upload writes the image under the given object key and returns its public
// URL. Non-image content types are rejected before any bytes are written.
func (s *Storage) Upload(
	ctx context.Context,
	objectKey, contentType string,
	reader io.Reader,
	size int64,
) (string, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", fmt.Errorf(
			"unsupported content type %q: %w",
			contentType,
			core.ErrInvalidInput,
		)
	}

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey), nil
}

func (s *Storage) Remove(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(
		ctx,
		s.bucket,
		objectKey,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("remove object: %w", err)
	}

	return nil
}
