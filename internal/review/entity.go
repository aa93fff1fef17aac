// AngelaMos | 2026
// entity.go

package review

import (
	"time"
)

type Review struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	UserID    string    `db:"user_id"`
	Comment   string    `db:"comment"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}
