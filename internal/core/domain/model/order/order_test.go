package order_test

import (
	"testing"
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Alice Smith", "+358401234567")
	require.NoError(t, err)
	return c
}

func mustAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	a, err := order.NewDeliveryAddress("Helsinki", "Mannerheimintie 1", "00100")
	require.NoError(t, err)
	return a
}

func mustItem(t *testing.T, orderID kernel.UUID, plu string, now time.Time) *item.Item {
	t.Helper()
	it, err := item.NewItem(orderID, plu, "Margherita Pizza", 1, item.Ordered, now)
	require.NoError(t, err)
	return it
}

func mustEntry(t *testing.T, status order.Status, at time.Time) order.StatusHistoryEntry {
	t.Helper()
	e, err := order.NewStatusHistoryEntry(status, at)
	require.NoError(t, err)
	return e
}

func mustNewOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	o, err := order.NewOrder(
		id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
		mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
		order.Received, nil,
		[]*item.Item{mustItem(t, id, "plu-1", now)},
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("synthesizes initial history when seed is empty", func(t *testing.T) {
		o := mustNewOrder(t, now)

		assert.NoError(t, o.Validate())
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())

		require.Len(t, o.StatusHistory(), 1)
		assert.Equal(t, order.Received, o.StatusHistory()[0].Status())
		assert.Equal(t, now, o.StatusHistory()[0].Timestamp())
	})

	t.Run("keeps caller supplied seed history", func(t *testing.T) {
		id := kernel.NewUUID()
		seed := []order.StatusHistoryEntry{
			mustEntry(t, order.Received, now.Add(-2*time.Minute)),
			mustEntry(t, order.Preparing, now.Add(-time.Minute)),
		}

		o, err := order.NewOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
			mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
			order.Preparing, seed,
			[]*item.Item{mustItem(t, id, "plu-1", now)},
			now,
		)
		require.NoError(t, err)

		require.Len(t, o.StatusHistory(), 2)
		assert.Equal(t, now.Add(-2*time.Minute), o.StatusHistory()[0].Timestamp())
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("rejects seed history ending with another status", func(t *testing.T) {
		id := kernel.NewUUID()
		seed := []order.StatusHistoryEntry{
			mustEntry(t, order.Preparing, now),
		}

		o, err := order.NewOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
			mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
			order.Received, seed,
			[]*item.Item{mustItem(t, id, "plu-1", now)},
			now,
		)
		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("rejects items with duplicate plu", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
			mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
			order.Received, nil,
			[]*item.Item{mustItem(t, id, "plu-1", now), mustItem(t, id, "plu-1", now)},
			now,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrDuplicatePLU)
		assert.Nil(t, o)
	})

	t.Run("rejects items belonging to another order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), "channel-123",
			mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
			order.Received, nil,
			[]*item.Item{mustItem(t, kernel.NewUUID(), "plu-1", now)},
			now,
		)
		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("allows order without items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "channel-123",
			mustCustomer(t), mustAddress(t), now.Add(30*time.Minute),
			order.Received, nil, nil, now,
		)
		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		tests := []struct {
			name string
			call func() (*order.Order, error)
		}{
			{"empty id", func() (*order.Order, error) {
				return order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "ch",
					mustCustomer(t), mustAddress(t), now, order.Received, nil, nil, now)
			}},
			{"empty account", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "ch",
					mustCustomer(t), mustAddress(t), now, order.Received, nil, nil, now)
			}},
			{"empty brand id", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "ch",
					mustCustomer(t), mustAddress(t), now, order.Received, nil, nil, now)
			}},
			{"empty channel order id", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
					mustCustomer(t), mustAddress(t), now, order.Received, nil, nil, now)
			}},
			{"unconstructed customer", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
					order.Customer{}, mustAddress(t), now, order.Received, nil, nil, now)
			}},
			{"unconstructed address", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
					mustCustomer(t), order.DeliveryAddress{}, now, order.Received, nil, nil, now)
			}},
			{"zero pickup time", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
					mustCustomer(t), mustAddress(t), time.Time{}, order.Received, nil, nil, now)
			}},
			{"unknown status", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
					mustCustomer(t), mustAddress(t), now, order.Unknown, nil, nil, now)
			}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				o, err := test.call()
				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rejects empty history", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
			mustCustomer(t), mustAddress(t), now,
			order.Received, now, now, nil, nil,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("rejects history with decreasing timestamps", func(t *testing.T) {
		history := []order.StatusHistoryEntry{
			mustEntry(t, order.Received, now),
			mustEntry(t, order.Preparing, now.Add(-time.Hour)),
		}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ch",
			mustCustomer(t), mustAddress(t), now,
			order.Preparing, now, now, history, nil,
		)
		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("appends history entry and refreshes updated at", func(t *testing.T) {
		o := mustNewOrder(t, now)
		at := now.Add(5 * time.Minute)

		err := o.ChangeStatus(order.Preparing, at)
		require.NoError(t, err)

		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, at, o.UpdatedAt())
		assert.Equal(t, now, o.CreatedAt())

		require.Len(t, o.StatusHistory(), 2)
		last := o.StatusHistory()[1]
		assert.Equal(t, order.Preparing, last.Status())
		assert.Equal(t, at, last.Timestamp())
	})

	t.Run("allows moving backwards through the lifecycle", func(t *testing.T) {
		o := mustNewOrder(t, now)

		require.NoError(t, o.ChangeStatus(order.Cancelled, now.Add(time.Minute)))
		require.NoError(t, o.ChangeStatus(order.Received, now.Add(2*time.Minute)))

		assert.Equal(t, order.Received, o.Status())
		assert.Len(t, o.StatusHistory(), 3)
	})

	t.Run("rejects invalid status and leaves order untouched", func(t *testing.T) {
		o := mustNewOrder(t, now)

		err := o.ChangeStatus(order.Status(42), now.Add(time.Minute))
		require.Error(t, err)

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Len(t, o.StatusHistory(), 1)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	now := time.Now().UTC()

	first := mustNewOrder(t, now)
	second := mustNewOrder(t, now)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("directly instantiated order fails", func(t *testing.T) {
		o := &order.Order{}
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
