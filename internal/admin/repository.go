// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type StoreStats struct {
	TotalUsers     int            `db:"-" json:"total_users"`
	ActiveUsers    int            `db:"-" json:"active_users"`
	TotalProducts  int            `db:"-" json:"total_products"`
	ActiveBanners  int            `db:"-" json:"active_banners"`
	TotalReviews   int            `db:"-" json:"total_reviews"`
	OrdersByStatus map[string]int `db:"-" json:"orders_by_status"`
}

type StatsRepository interface {
	CollectStoreStats(ctx context.Context) (*StoreStats, error)
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CollectStoreStats(
	ctx context.Context,
) (*StoreStats, error) {
	stats := &StoreStats{
		OrdersByStatus: make(map[string]int),
	}

	counts := []struct {
		dest  *int
		query string
	}{
		{&stats.TotalUsers, `SELECT COUNT(*) FROM users`},
		{
			&stats.ActiveUsers,
			`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`,
		},
		{&stats.TotalProducts, `SELECT COUNT(*) FROM products`},
		{
			&stats.ActiveBanners,
			`SELECT COUNT(*) FROM banners WHERE deleted_at IS NULL`,
		},
		{&stats.TotalReviews, `SELECT COUNT(*) FROM reviews`},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("collect store stats: %w", err)
		}
	}

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM orders GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("collect order stats: %w", err)
	}

	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	return stats, nil
}
