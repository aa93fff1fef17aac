// AngelaMos | 2026
// repository.go

package banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/petal-commerce/internal/core"
)

type Repository interface {
	Create(ctx context.Context, banner *Banner) error
	GetByID(ctx context.Context, id string) (*Banner, error)
	ListActive(ctx context.Context) ([]Banner, error)
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, banner *Banner) error {
	query := `
		INSERT INTO banners (id, image_url, object_key)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &banner.CreatedAt, query,
		banner.ID,
		banner.ImageURL,
		banner.ObjectKey,
	)
	if err != nil {
		return fmt.Errorf("create banner: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Banner, error) {
	query := `
		SELECT id, image_url, object_key, created_at, deleted_at
		FROM banners
		WHERE id = $1 AND deleted_at IS NULL`

	var banner Banner
	err := r.db.GetContext(ctx, &banner, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get banner: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}

	return &banner, nil
}

// ListActive filters soft-deleted banners in the query itself so a deleted
// banner can never leak into the storefront listing.
func (r *repository) ListActive(ctx context.Context) ([]Banner, error) {
	query := `
		SELECT id, image_url, object_key, created_at, deleted_at
		FROM banners
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	var banners []Banner
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	return banners, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE banners
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete banner: %w", core.ErrNotFound)
	}

	return nil
}
