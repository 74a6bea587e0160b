package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := pendingOrder(t)
	second := pendingOrder(t)
	cmd, _ := commands.NewExpirePendingOrdersCommand(30 * time.Minute)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	// OrderRepository is fetched once for the sweep and again per stale order,
	// so it stays outside the ordered chain.
	uow.On("OrderRepository").Return(orderRepo).Times(3)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Times(2),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewExpirePendingOrdersCommandHandler(factory, publisher)
	expired, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	require.Len(t, publisher.published, 2)
	assert.Equal(t, order.Cancelled, publisher.published[0].To)
	uow.AssertExpectations(t)
}

func TestExpirePendingOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpirePendingOrdersCommand(30 * time.Minute)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewExpirePendingOrdersCommandHandler(factory, publisher)
	expired, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, expired)
	assert.Empty(t, publisher.published)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
