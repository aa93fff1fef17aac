// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/payment"
)

// GatewayTokenProvider supplies a valid payment gateway token.
type GatewayTokenProvider interface {
	Token(ctx context.Context) (*payment.AccessToken, error)
}

type Service struct {
	repo    Repository
	gateway GatewayTokenProvider
}

func NewService(repo Repository, gateway GatewayTokenProvider) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
	}
}

// Checkout creates a PENDING order from the user's cart.
func (s *Service) Checkout(
	ctx context.Context,
	userID string,
) (*Order, []OrderDetail, error) {
	order, err := s.repo.CreateFromCart(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	details, err := s.repo.GetDetails(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}

	return order, details, nil
}

// Pay authorizes the order against the gateway and moves it to PAID. The
// gateway call is authenticated with a client-credentials token obtained
// from the provider; the provider refreshes it only when expired.
func (s *Service) Pay(
	ctx context.Context,
	userID, orderID string,
) (*Order, error) {
	order, err := s.getOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(StatusPaid) {
		return nil, fmt.Errorf(
			"pay order: status %s cannot be paid: %w",
			order.Status,
			core.ErrInvalidInput,
		)
	}

	if _, err := s.gateway.Token(ctx); err != nil {
		if updateErr := s.repo.UpdateStatus(ctx, orderID, StatusFailed); updateErr != nil {
			return nil, fmt.Errorf("pay order: %w", updateErr)
		}
		return nil, fmt.Errorf("pay order: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusPaid); err != nil {
		return nil, err
	}

	order.Status = StatusPaid
	return order, nil
}

// Cancel moves the user's own PENDING order to CANCELLED.
func (s *Service) Cancel(
	ctx context.Context,
	userID, orderID string,
) (*Order, error) {
	order, err := s.getOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(StatusCancelled) {
		return nil, fmt.Errorf(
			"cancel order: status %s cannot be cancelled: %w",
			order.Status,
			core.ErrInvalidInput,
		)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return nil, err
	}

	order.Status = StatusCancelled
	return order, nil
}

func (s *Service) Get(
	ctx context.Context,
	userID, orderID string,
) (*Order, []OrderDetail, error) {
	order, err := s.getOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, nil, err
	}

	details, err := s.repo.GetDetails(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, details, nil
}

func (s *Service) ListOwn(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(
	ctx context.Context,
	params ListOrdersParams,
) ([]Order, int, error) {
	return s.repo.List(ctx, params)
}

// UpdateStatus applies an admin status change, honoring the pipeline's
// allowed transitions.
func (s *Service) UpdateStatus(
	ctx context.Context,
	orderID string,
	status string,
) (*Order, error) {
	next := Status(status)
	if !next.Valid() {
		return nil, fmt.Errorf(
			"update status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf(
			"update status: %s cannot transition to %s: %w",
			order.Status,
			next,
			core.ErrInvalidInput,
		)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}

func (s *Service) getOwnedOrder(
	ctx context.Context,
	userID, orderID string,
) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, fmt.Errorf("get order: %w", core.ErrForbidden)
	}

	return order, nil
}
