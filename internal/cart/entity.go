// AngelaMos | 2026
// entity.go

package cart

import (
	"time"
)

type Cart struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CartItem is a cart row joined with the product it references.
type CartItem struct {
	CartID         string    `db:"cart_id"`
	ProductID      string    `db:"product_id"`
	Quantity       int       `db:"quantity"`
	ProductName    string    `db:"product_name"`
	UnitPriceCents int64     `db:"unit_price_cents"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (i *CartItem) SubtotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}
