package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles order status transitions and the
// cascade onto the order's items.
//
// The cascade is deliberately not atomic. The order transition commits in
// its own transaction first, then each item transitions in a transaction of
// its own. A failure mid-cascade stops the remaining items and surfaces the
// error, leaving the already transitioned items committed. Channels replay
// status callbacks, so a retried cascade converges instead of corrupting.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions. Requires a UoWFactory because the cascade spans the order
// and item repositories across several transactions.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the order, cascades the status onto every item, and
// returns the order re-read from storage so the caller sees the cascade's
// outcome. The order row is locked for the duration of its transaction to
// serialize concurrent transitions of the same order.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.transitionOrder(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// Item statuses share the order status ordinals, so the cascade maps
	// by ordinal: a cancelled order cancels its items, a ready order marks
	// them ready.
	itemStatus, err := item.StatusFromOrdinal(cmd.Status().Ordinal())
	if err != nil {
		return nil, err
	}

	for _, it := range aggregate.Items() {
		if err = h.transitionItem(ctx, aggregate.ID(), it.PLU(), itemStatus); err != nil {
			return nil, err
		}
	}

	return h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
}

func (h *UpdateOrderStatusCommandHandler) transitionOrder(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateOrderStatusCommandHandler) transitionItem(
	ctx context.Context,
	orderID kernel.UUID,
	plu string,
	status item.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	it, err := uow.ItemRepository().GetForUpdate(ctx, orderID, plu)
	if err != nil {
		return err
	}

	if err = it.ChangeStatus(status, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ItemRepository().Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
