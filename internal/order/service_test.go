// AngelaMos | 2026
// service_test.go

package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/order"
	"github.com/carterperez-dev/petal-commerce/internal/payment"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateFromCart(
	ctx context.Context,
	userID string,
) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRepository) GetByID(
	ctx context.Context,
	id string,
) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRepository) GetDetails(
	ctx context.Context,
	orderID string,
) ([]order.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderDetail), args.Error(1)
}

func (m *MockRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockRepository) List(
	ctx context.Context,
	params order.ListOrdersParams,
) ([]order.Order, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Int(1), args.Error(2)
}

func (m *MockRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status order.Status,
) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type fakeGateway struct {
	calls int
	err   error
}

func (g *fakeGateway) Token(
	ctx context.Context,
) (*payment.AccessToken, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &payment.AccessToken{AccessToken: "token"}, nil
}

func TestPay_PendingOrderBecomesPaid(t *testing.T) {
	repo := new(MockRepository)
	gateway := &fakeGateway{}
	svc := order.NewService(repo, gateway)

	userID := uuid.New().String()
	pending := &order.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: order.StatusPending,
	}

	repo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	repo.On("UpdateStatus", mock.Anything, pending.ID, order.StatusPaid).
		Return(nil)

	paid, err := svc.Pay(context.Background(), userID, pending.ID)

	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, paid.Status)
	assert.Equal(t, 1, gateway.calls)
	repo.AssertExpectations(t)
}

func TestPay_GatewayFailureMarksOrderFailed(t *testing.T) {
	repo := new(MockRepository)
	gateway := &fakeGateway{err: errors.New("gateway down")}
	svc := order.NewService(repo, gateway)

	userID := uuid.New().String()
	pending := &order.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: order.StatusPending,
	}

	repo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	repo.On("UpdateStatus", mock.Anything, pending.ID, order.StatusFailed).
		Return(nil)

	_, err := svc.Pay(context.Background(), userID, pending.ID)

	require.Error(t, err)
	repo.AssertCalled(
		t,
		"UpdateStatus",
		mock.Anything,
		pending.ID,
		order.StatusFailed,
	)
}

func TestPay_AlreadyPaidOrderRejected(t *testing.T) {
	repo := new(MockRepository)
	gateway := &fakeGateway{}
	svc := order.NewService(repo, gateway)

	userID := uuid.New().String()
	paid := &order.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: order.StatusPaid,
	}

	repo.On("GetByID", mock.Anything, paid.ID).Return(paid, nil)

	_, err := svc.Pay(context.Background(), userID, paid.ID)

	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Zero(t, gateway.calls)
	repo.AssertNotCalled(
		t,
		"UpdateStatus",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	)
}

func TestPay_OtherUsersOrderForbidden(t *testing.T) {
	repo := new(MockRepository)
	svc := order.NewService(repo, &fakeGateway{})

	someoneElses := &order.Order{
		ID:     uuid.New().String(),
		UserID: uuid.New().String(),
		Status: order.StatusPending,
	}

	repo.On("GetByID", mock.Anything, someoneElses.ID).
		Return(someoneElses, nil)

	_, err := svc.Pay(context.Background(), uuid.New().String(), someoneElses.ID)

	require.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateStatus_InvalidTransitionRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := order.NewService(repo, &fakeGateway{})

	completed := &order.Order{
		ID:     uuid.New().String(),
		UserID: uuid.New().String(),
		Status: order.StatusCompleted,
	}

	repo.On("GetByID", mock.Anything, completed.ID).Return(completed, nil)

	_, err := svc.UpdateStatus(
		context.Background(),
		completed.ID,
		string(order.StatusPending),
	)

	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.StatusPending, order.StatusPaid, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusFailed, true},
		{order.StatusPaid, order.StatusPrepared, true},
		{order.StatusPrepared, order.StatusShipped, true},
		{order.StatusShipped, order.StatusCompleted, true},
		{order.StatusPaid, order.StatusRefunded, true},
		{order.StatusPending, order.StatusShipped, false},
		{order.StatusCompleted, order.StatusPending, false},
		{order.StatusCancelled, order.StatusPaid, false},
		{order.StatusRefunded, order.StatusPaid, false},
	}

	for _, tt := range tests {
		assert.Equal(
			t,
			tt.allowed,
			tt.from.CanTransitionTo(tt.to),
			"%s -> %s",
			tt.from,
			tt.to,
		)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []order.Status{
		order.StatusPending, order.StatusPaid, order.StatusPrepared,
		order.StatusShipped, order.StatusCompleted, order.StatusFailed,
		order.StatusCancelled, order.StatusRefunded,
	} {
		assert.True(t, s.Valid(), "%s", s)
	}

	assert.False(t, order.Status("UNKNOWN").Valid())
	assert.False(t, order.Status("paid").Valid())
}
