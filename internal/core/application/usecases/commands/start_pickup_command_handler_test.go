package commands_test

import (
	"testing"

	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, courier := orderInStatus(t, order.Assigned)
	cmd, err := commands.NewStartPickupCommand(aggregate.ID(), courier)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, aggregate, order.TransitionStart).Return(nil).Once()

	h := commands.NewStartPickupCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.InProgress, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartPickupCommandHandler_Handle_ForeignCourier(t *testing.T) {
	ctx := t.Context()
	aggregate, _ := orderInStatus(t, order.Assigned)
	other := testActor(t, kernel.RoleCourier)
	cmd, err := commands.NewStartPickupCommand(aggregate.ID(), other)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartPickupCommandHandler(factory, new(MockEventPublisher))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrRoleDenied)
	require.Equal(t, order.Assigned, aggregate.Status())
	uow.AssertExpectations(t)
}
