package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the full aggregate atomically: the order row, its items, and the
// initial entries of both status histories all appear together or not at all.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s created in status %s", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// aggregate. When the command carries no seed history, a single entry is
// synthesized from the creation status at server time. Returns an
// already-exists error when an order with the same identifier was stored
// before, so channel retries stay idempotent on the caller side.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.CustomerPhoneNumber())
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(cmd.DeliveryCity(), cmd.DeliveryStreet(), cmd.DeliveryPostalCode())
	if err != nil {
		return nil, err
	}

	seedHistory := make([]order.StatusHistoryEntry, 0, len(cmd.SeedHistory()))
	for _, seed := range cmd.SeedHistory() {
		entry, entryErr := order.NewStatusHistoryEntry(seed.Status, seed.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		seedHistory = append(seedHistory, entry)
	}

	items := make([]*item.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		it, itemErr := item.NewItem(cmd.OrderID(), spec.PLU, spec.Name, spec.Quantity, spec.Status, now)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.Account(), cmd.BrandID(), cmd.ChannelOrderID(),
		customer, address, cmd.PickupTime(),
		cmd.Status(), seedHistory, items, now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
