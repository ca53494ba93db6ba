package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/orders"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindActiveOrder(ctx context.Context, tableID string) (*models.Order, error) {
	args := m.Called(tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockStore) CreateOrder(ctx context.Context, order models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockStore) AppendLines(ctx context.Context, orderID string, lines []models.OrderLine) error {
	args := m.Called(orderID, lines)
	return args.Error(0)
}

func (m *MockStore) SetOrderStatus(ctx context.Context, orderID string, status string) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func (m *MockStore) SetTableStatus(ctx context.Context, tableID string, status string) error {
	args := m.Called(tableID, status)
	return args.Error(0)
}

func lines() []models.OrderLine {
	return []models.OrderLine{{
		Line_key:   "A-simple",
		Product_id: "A",
		Unit_price: 2,
		Quantity:   1,
	}}
}

func TestSubmitCartCreatesOrderAndOccupiesTable(t *testing.T) {
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(nil, nil)
	store.On("CreateOrder", mock.AnythingOfType("models.Order")).Return(nil)
	store.On("SetTableStatus", "t1", models.TableStatusOccupied).Return(nil)

	adapter := orders.NewAdapter(store)
	order, err := adapter.SubmitCart(context.Background(), "t1", lines(), "waiter-1")

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusActive, order.Status)
	assert.Equal(t, "t1", *order.Table_id)
	assert.Len(t, order.Lines, 1)
	store.AssertExpectations(t)
}

func TestSubmitCartAppendsToActiveOrder(t *testing.T) {
	tableID := "t1"
	existing := &models.Order{
		Order_id: "o1",
		Table_id: &tableID,
		Status:   models.OrderStatusActive,
		Lines:    lines(),
	}
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(existing, nil)
	store.On("AppendLines", "o1", lines()).Return(nil)

	adapter := orders.NewAdapter(store)
	order, err := adapter.SubmitCart(context.Background(), "t1", lines(), "")

	require.NoError(t, err)
	// Appended as-is: two lines sharing a key, no cross-submission merge.
	assert.Len(t, order.Lines, 2)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything)
	store.AssertNotCalled(t, "SetTableStatus", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestSubmitCartRejectsEmptyCartBeforeStoreCalls(t *testing.T) {
	store := new(MockStore)
	adapter := orders.NewAdapter(store)

	_, err := adapter.SubmitCart(context.Background(), "t1", nil, "")

	assert.True(t, errs.IsValidation(err))
	store.AssertNotCalled(t, "FindActiveOrder", mock.Anything)
}

func TestSubmitCartPropagatesStoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(nil, errors.New("connection reset"))

	adapter := orders.NewAdapter(store)
	_, err := adapter.SubmitCart(context.Background(), "t1", lines(), "")

	assert.True(t, errs.IsExternalStore(err))
	store.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestCancelOrderCancelsAndFreesTable(t *testing.T) {
	tableID := "t1"
	existing := &models.Order{Order_id: "o1", Table_id: &tableID, Status: models.OrderStatusActive}
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(existing, nil)
	store.On("SetOrderStatus", "o1", models.OrderStatusCancelled).Return(nil)
	store.On("SetTableStatus", "t1", models.TableStatusFree).Return(nil)

	adapter := orders.NewAdapter(store)
	cancelled, err := adapter.CancelOrder(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "o1", cancelled)
	store.AssertExpectations(t)
}

func TestCancelOrderWithoutActiveOrderStillFreesTable(t *testing.T) {
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(nil, nil)
	store.On("SetTableStatus", "t1", models.TableStatusFree).Return(nil)

	adapter := orders.NewAdapter(store)
	cancelled, err := adapter.CancelOrder(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "", cancelled)
	store.AssertNotCalled(t, "SetOrderStatus", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCancelOrderPropagatesStatusFailure(t *testing.T) {
	tableID := "t1"
	existing := &models.Order{Order_id: "o1", Table_id: &tableID, Status: models.OrderStatusActive}
	store := new(MockStore)
	store.On("FindActiveOrder", "t1").Return(existing, nil)
	store.On("SetOrderStatus", "o1", models.OrderStatusCancelled).Return(errors.New("timeout"))

	adapter := orders.NewAdapter(store)
	_, err := adapter.CancelOrder(context.Background(), "t1")

	assert.True(t, errs.IsExternalStore(err))
	store.AssertNotCalled(t, "SetTableStatus", mock.Anything, mock.Anything)
}
