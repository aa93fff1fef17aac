// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/petal-commerce/internal/core"
)

type Repository interface {
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	Create(ctx context.Context, cart *Cart) error
	GetItems(ctx context.Context, cartID string) ([]CartItem, error)
	UpsertItem(ctx context.Context, cartID, productID string, quantity int) error
	SetItemQuantity(
		ctx context.Context,
		cartID, productID string,
		quantity int,
	) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(
	ctx context.Context,
	userID string,
) (*Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1`

	var cart Cart
	err := r.db.GetContext(ctx, &cart, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cart: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return &cart, nil
}

func (r *repository) Create(ctx context.Context, cart *Cart) error {
	query := `
		INSERT INTO carts (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, cart, query, cart.ID, cart.UserID)
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}

	return nil
}

func (r *repository) GetItems(
	ctx context.Context,
	cartID string,
) ([]CartItem, error) {
	query := `
		SELECT
			ci.cart_id, ci.product_id, ci.quantity,
			p.name AS product_name, p.price_cents AS unit_price_cents,
			ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND p.deleted_at IS NULL
		ORDER BY ci.created_at`

	var items []CartItem
	if err := r.db.SelectContext(ctx, &items, query, cartID); err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}

	return items, nil
}

// UpsertItem adds the quantity to an existing row or inserts a new one.
func (r *repository) UpsertItem(
	ctx context.Context,
	cartID, productID string,
	quantity int,
) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, cartID, productID, quantity); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}

	return nil
}

func (r *repository) SetItemQuantity(
	ctx context.Context,
	cartID, productID string,
	quantity int,
) error {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE cart_id = $1 AND product_id = $2`

	result, err := r.db.ExecContext(ctx, query, cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set cart item quantity: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) RemoveItem(
	ctx context.Context,
	cartID, productID string,
) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	result, err := r.db.ExecContext(ctx, query, cartID, productID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("remove cart item: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, cartID string) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	if _, err := r.db.ExecContext(ctx, query, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}
