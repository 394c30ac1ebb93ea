package commands_test

import (
	"testing"
	"time"

	"caisse/internal/core/application/usecases/commands"
	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/core/domain/model/session"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutSessionFixture(t *testing.T, tableNum int) *session.Session {
	t.Helper()

	p := product.DefaultCatalog().All()[0]
	c := cart.NewCart()
	require.NoError(t, c.Add(p))
	require.NoError(t, c.Add(p))

	number, err := kernel.NewTableNumber(tableNum)
	require.NoError(t, err)

	customer := "Leila"
	s, err := session.RestoreSession(c.Lines(), &number, "Sami", &customer)
	require.NoError(t, err)
	return s
}

func TestCheckoutOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutOrderCommand(orderID, []string{"Karim"})
	require.NoError(t, err)

	testSession := checkoutSessionFixture(t, 4)
	four, _ := kernel.NewTableNumber(4)
	testTable, err := table.NewTable(four, time.Now().UTC())
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", ctx).Return(testSession, nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetByNumber", ctx, four).Return(testTable, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tableRepo.On("Update", ctx, mock.AnythingOfType("*table.Table")).Return(nil).Once(),
		sessionRepo.On("Save", ctx, mock.AnythingOfType("*session.Session")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(orderID))
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, 4, created.TableNumber().Int())
	assert.Equal(t, []string{"Leila", "Karim"}, created.ClientNames())
	assert.Equal(t, "Sami", created.Server())

	// table now carries the order
	assert.Equal(t, table.Occupied, testTable.Status())
	require.NotNil(t, testTable.CurrentOrderID())
	assert.True(t, testTable.CurrentOrderID().IsEqual(orderID))

	// session reset, server kept
	assert.True(t, testSession.CartIsEmpty())
	assert.Nil(t, testSession.CurrentTable())
	assert.Nil(t, testSession.SelectedCustomer())
	assert.Equal(t, "Sami", testSession.Server())

	sessionRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutOrderCommand(kernel.NewUUID(), nil)
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", ctx).Return(session.NewSession(), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	assert.Nil(t, created)
}

func TestCheckoutOrderCommandHandler_Handle_NoTableSelected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutOrderCommand(kernel.NewUUID(), nil)
	require.NoError(t, err)

	p := product.DefaultCatalog().All()[0]
	testSession := session.NewSession()
	require.NoError(t, testSession.AddToCart(p))

	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", ctx).Return(testSession, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoTableSelected)
	assert.Nil(t, created)
}

func TestCheckoutOrderCommandHandler_Handle_UnknownTable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutOrderCommand(kernel.NewUUID(), nil)
	require.NoError(t, err)

	testSession := checkoutSessionFixture(t, 99)
	ninetyNine, _ := kernel.NewTableNumber(99)

	sessionRepo := new(MockSessionRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", ctx).Return(testSession, nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetByNumber", ctx, ninetyNine).
			Return(nil, errs.NewObjectNotFoundError("table", 99)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTableNotFound)
	assert.Nil(t, created)
}

func TestCheckoutOrderCommandHandler_Handle_ReservedTableConverts(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutOrderCommand(orderID, nil)
	require.NoError(t, err)

	testSession := checkoutSessionFixture(t, 6)
	six, _ := kernel.NewTableNumber(6)
	testTable, err := table.NewTable(six, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, testTable.UpdateStatus(table.Reserved))

	sessionRepo := new(MockSessionRepository)
	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", ctx).Return(testSession, nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetByNumber", ctx, six).Return(testTable, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tableRepo.On("Update", ctx, mock.AnythingOfType("*table.Table")).Return(nil).Once(),
		sessionRepo.On("Save", ctx, mock.AnythingOfType("*session.Session")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, table.Occupied, testTable.Status())
}
