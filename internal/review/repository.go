// AngelaMos | 2026
// repository.go

package review

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/petal-commerce/internal/core"
)

type Repository interface {
	Create(ctx context.Context, review *Review) error
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, review *Review) error {
	query := `
		INSERT INTO reviews (
			id, product_id, user_id, comment, rating
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &review.CreatedAt, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.Comment,
		review.Rating,
	)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *repository) ListByProduct(
	ctx context.Context,
	productID string,
) ([]Review, error) {
	query := `
		SELECT id, product_id, user_id, comment, rating, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews, query, productID); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}
