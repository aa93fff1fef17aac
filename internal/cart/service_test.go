// AngelaMos | 2026
// service_test.go

package cart_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/cart"
	"github.com/carterperez-dev/petal-commerce/internal/core"
	"github.com/carterperez-dev/petal-commerce/internal/product"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUser(
	ctx context.Context,
	userID string,
) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) GetItems(
	ctx context.Context,
	cartID string,
) ([]cart.CartItem, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.CartItem), args.Error(1)
}

func (m *MockRepository) UpsertItem(
	ctx context.Context,
	cartID, productID string,
	quantity int,
) error {
	args := m.Called(ctx, cartID, productID, quantity)
	return args.Error(0)
}

func (m *MockRepository) SetItemQuantity(
	ctx context.Context,
	cartID, productID string,
	quantity int,
) error {
	args := m.Called(ctx, cartID, productID, quantity)
	return args.Error(0)
}

func (m *MockRepository) RemoveItem(
	ctx context.Context,
	cartID, productID string,
) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type fakeProducts struct {
	products map[string]*product.Product
}

func (f *fakeProducts) Get(
	ctx context.Context,
	id string,
) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return p, nil
}

func TestGetOrCreate_CreatesCartOnFirstAccess(t *testing.T) {
	repo := new(MockRepository)
	svc := cart.NewService(repo, &fakeProducts{})

	userID := uuid.New().String()

	repo.On("GetByUser", mock.Anything, userID).Return(nil, core.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*cart.Cart")).
		Return(nil)
	repo.On("GetItems", mock.Anything, mock.AnythingOfType("string")).
		Return([]cart.CartItem{}, nil)

	created, items, err := svc.GetOrCreate(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, items)
	repo.AssertExpectations(t)
}

func TestAddItem_MergesQuantities(t *testing.T) {
	repo := new(MockRepository)

	productID := uuid.New().String()
	products := &fakeProducts{products: map[string]*product.Product{
		productID: {ID: productID, Name: "Sunflower Seeds", Inventory: 10},
	}}
	svc := cart.NewService(repo, products)

	userID := uuid.New().String()
	existing := &cart.Cart{ID: uuid.New().String(), UserID: userID}

	repo.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	repo.On("UpsertItem", mock.Anything, existing.ID, productID, 3).
		Return(nil)
	repo.On("GetItems", mock.Anything, existing.ID).Return([]cart.CartItem{
		{CartID: existing.ID, ProductID: productID, Quantity: 5},
	}, nil)

	_, items, err := svc.AddItem(context.Background(), userID, cart.AddItemRequest{
		ProductID: productID,
		Quantity:  3,
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	repo.AssertExpectations(t)
}

func TestAddItem_InsufficientStock(t *testing.T) {
	repo := new(MockRepository)

	productID := uuid.New().String()
	products := &fakeProducts{products: map[string]*product.Product{
		productID: {ID: productID, Inventory: 2},
	}}
	svc := cart.NewService(repo, products)

	_, _, err := svc.AddItem(
		context.Background(),
		uuid.New().String(),
		cart.AddItemRequest{ProductID: productID, Quantity: 3},
	)

	require.ErrorIs(t, err, core.ErrInvalidInput)
	repo.AssertNotCalled(
		t,
		"UpsertItem",
		mock.Anything,
		mock.Anything,
		mock.Anything,
		mock.Anything,
	)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	repo := new(MockRepository)
	svc := cart.NewService(repo, &fakeProducts{})

	_, _, err := svc.AddItem(
		context.Background(),
		uuid.New().String(),
		cart.AddItemRequest{ProductID: uuid.New().String(), Quantity: 1},
	)

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestToCartResponse_TotalsItems(t *testing.T) {
	c := &cart.Cart{ID: uuid.New().String()}
	items := []cart.CartItem{
		{ProductID: "a", Quantity: 2, UnitPriceCents: 1500},
		{ProductID: "b", Quantity: 1, UnitPriceCents: 250},
	}

	resp := cart.ToCartResponse(c, items)

	assert.Equal(t, int64(3250), resp.TotalCents)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(3000), resp.Items[0].SubtotalCents)
	assert.Equal(t, int64(250), resp.Items[1].SubtotalCents)
}

func TestClear_NoCartIsNoop(t *testing.T) {
	repo := new(MockRepository)
	svc := cart.NewService(repo, &fakeProducts{})

	userID := uuid.New().String()
	repo.On("GetByUser", mock.Anything, userID).Return(nil, core.ErrNotFound)

	err := svc.Clear(context.Background(), userID)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}
