// AngelaMos | 2026
// entity.go

package order

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusPrepared  Status = "PREPARED"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPrepared, StatusShipped,
		StatusCompleted, StatusFailed, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// statusTransitions holds the allowed forward edges of the order pipeline.
var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusPaid, StatusFailed, StatusCancelled},
	StatusPaid:     {StatusPrepared, StatusRefunded},
	StatusPrepared: {StatusShipped, StatusRefunded},
	StatusShipped:  {StatusCompleted, StatusRefunded},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Status     Status    `db:"status"`
	TotalCents int64     `db:"total_cents"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// OrderDetail is one line of an order, keyed by (order_id, product_id).
type OrderDetail struct {
	OrderID        string `db:"order_id"`
	ProductID      string `db:"product_id"`
	ProductName    string `db:"product_name"`
	Amount         int    `db:"amount"`
	UnitPriceCents int64  `db:"unit_price_cents"`
}

func (d *OrderDetail) SubtotalCents() int64 {
	return d.UnitPriceCents * int64(d.Amount)
}
