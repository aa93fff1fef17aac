// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/petal-commerce/internal/core"
)

type Repository interface {
	CreateFromCart(ctx context.Context, userID string) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	GetDetails(ctx context.Context, orderID string) ([]OrderDetail, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	List(ctx context.Context, params ListOrdersParams) ([]Order, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

type checkoutLine struct {
	ProductID  string `db:"product_id"`
	Quantity   int    `db:"quantity"`
	PriceCents int64  `db:"price_cents"`
	Inventory  int    `db:"inventory"`
}

// CreateFromCart turns the user's cart into a PENDING order in a single
// transaction: lines are priced from the current catalog, inventory is
// decremented, and the cart is emptied. Insufficient stock or an empty cart
// aborts the whole transaction.
func (r *repository) CreateFromCart(
	ctx context.Context,
	userID string,
) (*Order, error) {
	order := &Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: StatusPending,
	}

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var cartID string
		err := tx.GetContext(ctx, &cartID,
			`SELECT id FROM carts WHERE user_id = $1`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checkout: cart: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("checkout: get cart: %w", err)
		}

		var lines []checkoutLine
		err = tx.SelectContext(ctx, &lines, `
			SELECT ci.product_id, ci.quantity, p.price_cents, p.inventory
			FROM cart_items ci
			JOIN products p ON p.id = ci.product_id
			WHERE ci.cart_id = $1 AND p.deleted_at IS NULL
			ORDER BY ci.product_id
			FOR UPDATE OF p`, cartID)
		if err != nil {
			return fmt.Errorf("checkout: load cart items: %w", err)
		}

		if len(lines) == 0 {
			return fmt.Errorf("checkout: empty cart: %w", core.ErrInvalidInput)
		}

		var total int64
		for _, line := range lines {
			if line.Inventory < line.Quantity {
				return fmt.Errorf(
					"checkout: insufficient stock for product %s: %w",
					line.ProductID,
					core.ErrInvalidInput,
				)
			}
			total += line.PriceCents * int64(line.Quantity)
		}
		order.TotalCents = total

		err = tx.GetContext(ctx, order, `
			INSERT INTO orders (id, user_id, status, total_cents)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at`,
			order.ID, order.UserID, order.Status, order.TotalCents)
		if err != nil {
			return fmt.Errorf("checkout: create order: %w", err)
		}

		for _, line := range lines {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_details (
					order_id, product_id, amount, unit_price_cents
				) VALUES ($1, $2, $3, $4)`,
				order.ID, line.ProductID, line.Quantity, line.PriceCents)
			if err != nil {
				return fmt.Errorf("checkout: create order detail: %w", err)
			}

			_, err = tx.ExecContext(ctx, `
				UPDATE products
				SET inventory = inventory - $2, updated_at = NOW()
				WHERE id = $1`,
				line.ProductID, line.Quantity)
			if err != nil {
				return fmt.Errorf("checkout: decrement inventory: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1`, cartID)
		if err != nil {
			return fmt.Errorf("checkout: clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	query := `
		SELECT id, user_id, status, total_cents, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var order Order
	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &order, nil
}

func (r *repository) GetDetails(
	ctx context.Context,
	orderID string,
) ([]OrderDetail, error) {
	query := `
		SELECT
			od.order_id, od.product_id, od.amount, od.unit_price_cents,
			p.name AS product_name
		FROM order_details od
		JOIN products p ON p.id = od.product_id
		WHERE od.order_id = $1
		ORDER BY od.product_id`

	var details []OrderDetail
	if err := r.db.SelectContext(ctx, &details, query, orderID); err != nil {
		return nil, fmt.Errorf("get order details: %w", err)
	}

	return details, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	query := `
		SELECT id, user_id, status, total_cents, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var orders []Order
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListOrdersParams,
) ([]Order, int, error) {
	params.Normalize()

	whereClause := "TRUE"
	var args []any
	argIdx := 1

	if params.Status != "" {
		whereClause = fmt.Sprintf("status = $%d", argIdx)
		args = append(args, params.Status)
		argIdx++
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM orders WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, status, total_cents, created_at, updated_at
		FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var orders []Order
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id string,
	status Status,
) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update order status: %w", core.ErrNotFound)
	}

	return nil
}
