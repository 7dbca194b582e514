package commands_test

import (
	"context"
	"testing"
	"time"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Get(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error) {
	args := m.Called(ctx, orderID, plu)
	if it := args.Get(0); it != nil {
		return it.(*item.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) GetForUpdate(ctx context.Context, orderID kernel.UUID, plu string) (*item.Item, error) {
	args := m.Called(ctx, orderID, plu)
	if it := args.Get(0); it != nil {
		return it.(*item.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func buildOrder(t *testing.T, id kernel.UUID, status order.Status, plus ...string) *order.Order {
	t.Helper()
	now := time.Now().UTC()

	customer, err := order.NewCustomer("Alice Smith", "+358401234567")
	require.NoError(t, err)

	address, err := order.NewDeliveryAddress("Helsinki", "Mannerheimintie 1", "00100")
	require.NoError(t, err)

	items := make([]*item.Item, 0, len(plus))
	for _, plu := range plus {
		it, itemErr := item.NewItem(id, plu, "Margherita Pizza", 1, item.Ordered, now)
		require.NoError(t, itemErr)
		items = append(items, it)
	}

	o, err := order.NewOrder(
		id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
		customer, address, now.Add(30*time.Minute),
		status, nil, items, now,
	)
	require.NoError(t, err)
	return o
}

func buildItem(t *testing.T, orderID kernel.UUID, plu string) *item.Item {
	t.Helper()
	it, err := item.NewItem(orderID, plu, "Margherita Pizza", 1, item.Ordered, time.Now().UTC())
	require.NoError(t, err)
	return it
}
