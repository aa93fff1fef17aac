// AngelaMos | 2026
// entity.go

package product

import (
	"time"
)

type Product struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	PriceCents  int64      `db:"price_cents"`
	Category    string     `db:"category"`
	Inventory   int        `db:"inventory"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Product) InStock(quantity int) bool {
	return p.Inventory >= quantity
}
