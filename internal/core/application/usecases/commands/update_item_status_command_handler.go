package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/item"
)

// UpdateItemStatusCommandHandler handles status transitions of a single
// item, for kitchens that track lines independently of the order.
type UpdateItemStatusCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemStatusCommandHandler creates a handler for item status
// transitions. Requires an ItemUoWFactory for transactional persistence.
func NewUpdateItemStatusCommandHandler(uowFactory ItemUoWFactory) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the item and returns its updated state. The item row
// is locked for the duration of the transaction to serialize concurrent
// transitions of the same item.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	it, err := uow.ItemRepository().GetForUpdate(ctx, cmd.OrderID(), cmd.PLU())
	if err != nil {
		return nil, err
	}

	if err = it.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.ItemRepository().Update(ctx, it); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return it, nil
}
