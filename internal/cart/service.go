// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/product"
)

// ProductGetter is the slice of the product service the cart needs for
// stock and existence checks.
type ProductGetter interface {
	Get(ctx context.Context, id string) (*product.Product, error)
}

type Service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) *Service {
	return &Service{
		repo:     repo,
		products: products,
	}
}

// GetOrCreate returns the user's cart with its items, creating the cart row
// on first access.
func (s *Service) GetOrCreate(
	ctx context.Context,
	userID string,
) (*Cart, []CartItem, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		cart = &Cart{
			ID:     uuid.New().String(),
			UserID: userID,
		}
		if createErr := s.repo.Create(ctx, cart); createErr != nil {
			return nil, nil, createErr
		}
	} else if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) AddItem(
	ctx context.Context,
	userID string,
	req AddItemRequest,
) (*Cart, []CartItem, error) {
	prod, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, nil, err
	}

	if !prod.InStock(req.Quantity) {
		return nil, nil, fmt.Errorf(
			"add item: insufficient stock: %w",
			core.ErrInvalidInput,
		)
	}

	cart, _, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpsertItem(ctx, cart.ID, req.ProductID, req.Quantity); err != nil {
		return nil, nil, err
	}

	items, err := s.repo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) UpdateItem(
	ctx context.Context,
	userID, productID string,
	quantity int,
) (*Cart, []CartItem, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.SetItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, nil, err
	}

	items, err := s.repo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) RemoveItem(
	ctx context.Context,
	userID, productID string,
) (*Cart, []CartItem, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, nil, err
	}

	items, err := s.repo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.repo.Clear(ctx, cart.ID)
}
