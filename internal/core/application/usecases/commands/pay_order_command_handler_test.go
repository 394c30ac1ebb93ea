package commands_test

import (
	"testing"
	"time"

	"caisse/internal/core/application/usecases/commands"
	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrderFixture(t *testing.T, id kernel.UUID, tableNum int) *order.Order {
	t.Helper()

	p := product.DefaultCatalog().All()[0]
	c := cart.NewCart()
	require.NoError(t, c.Add(p))

	number, err := kernel.NewTableNumber(tableNum)
	require.NoError(t, err)

	o, err := order.NewOrder(
		id, number,
		c.Lines(), c.Total(), c.VatBreakdown(),
		[]string{"Leila"}, "Sami", time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPayOrderCommand(orderID)
	require.NoError(t, err)

	testOrder := pendingOrderFixture(t, orderID, 4)
	four, _ := kernel.NewTableNumber(4)
	testTable, err := table.NewTable(four, time.Now().UTC())
	require.NoError(t, err)
	testTable.AddClients([]string{"Leila"})
	require.NoError(t, testTable.Occupy(orderID))

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetByNumber", ctx, four).Return(testTable, nil).Once(),
		tableRepo.On("Update", ctx, mock.AnythingOfType("*table.Table")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPayOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, testOrder.Status())
	assert.NotNil(t, testOrder.PaidAt())
	assert.Equal(t, table.Free, testTable.Status())
	assert.Nil(t, testTable.CurrentOrderID())
	assert.Empty(t, testTable.Clients())

	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPayOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPayOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestPayOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPayOrderCommand(orderID)
	require.NoError(t, err)

	testOrder := pendingOrderFixture(t, orderID, 4)
	firstPaidAt := time.Now().UTC()
	require.NoError(t, testOrder.Pay(firstPaidAt))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPayOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	assert.Equal(t, firstPaidAt, *testOrder.PaidAt())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestPayOrderCommandHandler_Handle_MissingTableTolerated(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPayOrderCommand(orderID)
	require.NoError(t, err)

	testOrder := pendingOrderFixture(t, orderID, 42)
	fortyTwo, _ := kernel.NewTableNumber(42)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetByNumber", ctx, fortyTwo).
			Return(nil, errs.NewObjectNotFoundError("table", 42)).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPayOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, testOrder.Status())
	tableRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
