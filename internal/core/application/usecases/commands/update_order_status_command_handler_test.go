package commands_test

import (
	"errors"
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Cancelled)
	require.NoError(t, err)

	stored := buildOrder(t, orderID, order.Received, "plu-1")
	refetched := buildOrder(t, orderID, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	orderUoW := new(MockUoW)
	itemUoW := new(MockUoW)
	readUoW := new(MockUoW)

	mock.InOrder(
		orderUoW.On("Begin", ctx).Return(nil).Once(),
		orderUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(stored, nil).Once(),
		orderUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		orderUoW.On("Commit", ctx).Return(nil).Once(),
		orderUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	storedItem := buildItem(t, orderID, "plu-1")
	mock.InOrder(
		itemUoW.On("Begin", ctx).Return(nil).Once(),
		itemUoW.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", mock.Anything, orderID, "plu-1").Return(storedItem, nil).Once(),
		itemUoW.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Update", mock.Anything, storedItem).Return(nil).Once(),
		itemUoW.On("Commit", ctx).Return(nil).Once(),
		itemUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	mock.InOrder(
		readUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(refetched, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(orderUoW).Once()
	factory.On("Create").Return(itemUoW).Once()
	factory.On("Create").Return(readUoW).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Same(t, refetched, updated)
	assert.Equal(t, order.Cancelled, stored.Status())
	assert.Len(t, stored.StatusHistory(), 2)

	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	orderUoW.AssertExpectations(t)
	itemUoW.AssertExpectations(t)
	readUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)

	updated, err := h.Handle(ctx, commands.UpdateOrderStatusCommand{})
	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Ready)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order", orderID.String())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CascadeStopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Ready)
	require.NoError(t, err)

	stored := buildOrder(t, orderID, order.Received, "plu-1", "plu-2")

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	orderUoW := new(MockUoW)
	itemUoW := new(MockUoW)

	mock.InOrder(
		orderUoW.On("Begin", ctx).Return(nil).Once(),
		orderUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(stored, nil).Once(),
		orderUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		orderUoW.On("Commit", ctx).Return(nil).Once(),
		orderUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// First item transition fails; the second item must never be touched.
	mock.InOrder(
		itemUoW.On("Begin", ctx).Return(nil).Once(),
		itemUoW.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", mock.Anything, orderID, "plu-1").
			Return(nil, errors.New("lock timeout")).Once(),
		itemUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(orderUoW).Once()
	factory.On("Create").Return(itemUoW).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, updated)

	itemRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, orderID, "plu-2")
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	orderUoW.AssertExpectations(t)
	itemUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}
