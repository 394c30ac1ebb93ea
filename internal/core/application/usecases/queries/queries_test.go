package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "caisse/internal/adapters/out/postgres"
	"caisse/internal/adapters/out/postgres/clientrepo"
	"caisse/internal/adapters/out/postgres/orderrepo"
	"caisse/internal/adapters/out/postgres/sessionrepo"
	"caisse/internal/adapters/out/postgres/tablerepo"
	"caisse/internal/core/application/usecases/queries"
	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/core/domain/model/session"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/core/ports"
	"caisse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the ledger schema.
// The pool is pinned to one connection so every statement sees the same
// in-memory database.
func newTestDB(t *testing.T) (*gorm.DB, ports.UnitOfWork) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&sessionrepo.SessionDTO{},
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&clientrepo.ClientDTO{},
	)
	require.NoError(t, err)

	return db, postgres_adapter.NewGormUnitOfWorkFactory(db).Create()
}

func tableNumberFixture(t *testing.T, n int) kernel.TableNumber {
	t.Helper()
	number, err := kernel.NewTableNumber(n)
	require.NoError(t, err)
	return number
}

func productFixture(t *testing.T) product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromMillimes(4500)
	require.NoError(t, err)
	rate, err := kernel.NewVatRate(7)
	require.NoError(t, err)
	p, err := product.NewProduct("cafe-express", "Café Express", price, "Boissons Chaudes", rate, "cafe.jpg")
	require.NoError(t, err)
	return p
}

func orderFixture(t *testing.T, tableNumber int, createdAt time.Time) *order.Order {
	t.Helper()

	line, err := cart.NewLine(productFixture(t), 2)
	require.NoError(t, err)

	c, err := cart.RestoreCart([]cart.Line{line})
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		tableNumberFixture(t, tableNumber),
		c.Lines(),
		c.Total(),
		c.VatBreakdown(),
		[]string{"Karim"},
		"Sami",
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestGetCartQueryHandler_EmptyWithoutSessionRow(t *testing.T) {
	db, _ := newTestDB(t)
	handler := queries.NewGetCartQueryHandler(db)

	response, err := handler.Handle(context.Background(), queries.NewGetCartQuery())

	require.NoError(t, err)
	assert.Empty(t, response.Lines)
	assert.Equal(t, int64(0), response.Total.Millimes())
	assert.Len(t, response.VatBreakdown, len(kernel.AllVatRates()))
	for _, bucket := range response.VatBreakdown {
		assert.True(t, bucket.Amount.IsZero())
	}
}

func TestGetCartQueryHandler_RecomputesDerivedFigures(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	s := session.NewSession()
	require.NoError(t, s.AddToCart(productFixture(t)))
	require.NoError(t, s.AddToCart(productFixture(t)))
	require.NoError(t, uow.SessionRepository().Save(ctx, s))

	handler := queries.NewGetCartQueryHandler(db)
	response, err := handler.Handle(ctx, queries.NewGetCartQuery())

	require.NoError(t, err)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "cafe-express", response.Lines[0].ProductID)
	assert.Equal(t, 2, response.Lines[0].Quantity)
	assert.Equal(t, int64(9000), response.Lines[0].Subtotal.Millimes())
	assert.Equal(t, int64(9000), response.Total.Millimes())

	// 7% of 9.000 = 0.630, every other bucket stays at zero.
	require.Len(t, response.VatBreakdown, len(kernel.AllVatRates()))
	for _, bucket := range response.VatBreakdown {
		if bucket.Rate.Percent() == 7 {
			assert.Equal(t, int64(630), bucket.Amount.Millimes())
		} else {
			assert.True(t, bucket.Amount.IsZero())
		}
	}
}

func TestGetAllTablesQueryHandler_OrderedByNumber(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	createdAt := time.Now().UTC().Truncate(time.Second)
	for _, n := range []int{3, 1, 2} {
		newTable, err := table.NewTable(tableNumberFixture(t, n), createdAt)
		require.NoError(t, err)
		require.NoError(t, uow.TableRepository().Add(ctx, newTable))
	}

	handler := queries.NewGetAllTablesQueryHandler(db)
	tables, err := handler.Handle(ctx, queries.NewGetAllTablesQuery())

	require.NoError(t, err)
	require.Len(t, tables, 3)
	for i, response := range tables {
		assert.Equal(t, i+1, response.Number.Int())
		assert.Equal(t, table.Free, response.Status)
		assert.Nil(t, response.Server)
		assert.Nil(t, response.CurrentOrderID)
	}
}

func TestGetTableByNumberQueryHandler(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	occupied, err := table.NewTable(tableNumberFixture(t, 4), time.Now().UTC().Truncate(time.Second))
	require.NoError(t, err)
	require.NoError(t, occupied.AssignServer("Sami"))
	occupied.AddClients([]string{"Leila", "Karim"})
	orderID := kernel.NewUUID()
	require.NoError(t, occupied.Occupy(orderID))
	require.NoError(t, uow.TableRepository().Add(ctx, occupied))

	handler := queries.NewGetTableByNumberQueryHandler(db)

	query, err := queries.NewGetTableByNumberQuery(tableNumberFixture(t, 4))
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "TABLE-4", response.ID)
	assert.Equal(t, table.Occupied, response.Status)
	assert.Equal(t, []string{"Leila", "Karim"}, response.Clients)
	require.NotNil(t, response.Server)
	assert.Equal(t, "Sami", *response.Server)
	require.NotNil(t, response.CurrentOrderID)
	assert.True(t, response.CurrentOrderID.IsEqual(orderID))
}

func TestGetTableByNumberQueryHandler_NotFound(t *testing.T) {
	db, _ := newTestDB(t)
	handler := queries.NewGetTableByNumberQueryHandler(db)

	query, err := queries.NewGetTableByNumberQuery(tableNumberFixture(t, 9))
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrdersQueryHandler_ReturnsFrozenSnapshots(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	first := orderFixture(t, 1, base)
	second := orderFixture(t, 2, base.Add(time.Minute))
	require.NoError(t, uow.OrderRepository().Add(ctx, first))
	require.NoError(t, uow.OrderRepository().Add(ctx, second))

	handler := queries.NewGetOrdersQueryHandler(db)
	query, err := queries.NewGetOrdersQuery(nil)
	require.NoError(t, err)

	orders, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.True(t, orders[0].ID.IsEqual(first.ID()))
	assert.True(t, orders[1].ID.IsEqual(second.ID()))

	snapshot := orders[0]
	assert.Equal(t, []string{"Karim"}, snapshot.ClientNames)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "cafe-express", snapshot.Lines[0].ProductID)
	assert.Equal(t, int64(9000), snapshot.Total.Millimes())
	require.Len(t, snapshot.VatBreakdown, len(kernel.AllVatRates()))
	for _, bucket := range snapshot.VatBreakdown {
		if bucket.Rate.Percent() == 7 {
			assert.Equal(t, int64(630), bucket.Amount.Millimes())
		} else {
			assert.True(t, bucket.Amount.IsZero())
		}
	}
	assert.Equal(t, order.Pending, snapshot.Status)
	assert.Equal(t, "Sami", snapshot.Server)
	assert.Nil(t, snapshot.PaidAt)
}

func TestGetOrdersQueryHandler_FiltersByStatus(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	pending := orderFixture(t, 1, base)
	settled := orderFixture(t, 2, base.Add(time.Minute))
	require.NoError(t, settled.Pay(base.Add(2*time.Minute)))
	require.NoError(t, uow.OrderRepository().Add(ctx, pending))
	require.NoError(t, uow.OrderRepository().Add(ctx, settled))

	handler := queries.NewGetOrdersQueryHandler(db)

	paid := order.Paid
	query, err := queries.NewGetOrdersQuery(&paid)
	require.NoError(t, err)

	orders, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].ID.IsEqual(settled.ID()))
	assert.Equal(t, order.Paid, orders[0].Status)
	require.NotNil(t, orders[0].PaidAt)
}

func TestGetCurrentTableOrdersQueryHandler(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, uow.OrderRepository().Add(ctx, orderFixture(t, 2, base)))
	require.NoError(t, uow.OrderRepository().Add(ctx, orderFixture(t, 2, base.Add(time.Minute))))
	require.NoError(t, uow.OrderRepository().Add(ctx, orderFixture(t, 5, base)))

	s := session.NewSession()
	number := tableNumberFixture(t, 2)
	require.NoError(t, s.SetCurrentTable(&number))
	require.NoError(t, uow.SessionRepository().Save(ctx, s))

	handler := queries.NewGetCurrentTableOrdersQueryHandler(db)
	orders, err := handler.Handle(ctx, queries.NewGetCurrentTableOrdersQuery())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, response := range orders {
		assert.Equal(t, 2, response.TableNumber.Int())
	}
}

func TestGetCurrentTableOrdersQueryHandler_EmptyWithoutSelection(t *testing.T) {
	db, uow := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, uow.OrderRepository().Add(ctx, orderFixture(t, 2, time.Now().UTC())))
	require.NoError(t, uow.SessionRepository().Save(ctx, session.NewSession()))

	handler := queries.NewGetCurrentTableOrdersQueryHandler(db)
	orders, err := handler.Handle(ctx, queries.NewGetCurrentTableOrdersQuery())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetSalesReportQueryHandler(t *testing.T) {
	_, uow := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	settled := orderFixture(t, 1, base)
	require.NoError(t, settled.Pay(base.Add(time.Minute)))
	require.NoError(t, uow.OrderRepository().Add(ctx, settled))
	require.NoError(t, uow.OrderRepository().Add(ctx, orderFixture(t, 2, base)))

	seated, err := table.NewTable(tableNumberFixture(t, 1), base)
	require.NoError(t, err)
	require.NoError(t, uow.TableRepository().Add(ctx, seated))

	handler := queries.NewGetSalesReportQueryHandler(
		uow.OrderRepository(),
		uow.TableRepository(),
		uow.ClientRepository(),
	)

	response, err := handler.Handle(ctx, queries.NewGetSalesReportQuery())
	require.NoError(t, err)

	assert.Equal(t, 1, response.Stats.PendingCount)
	assert.Equal(t, 1, response.Stats.PaidCount)
	assert.Equal(t, int64(9000), response.Stats.Revenue.Millimes())
	assert.Equal(t, 1, response.Stats.TotalTables)
	assert.Contains(t, response.Report, "RAPPORT JOURNALIER - CAFÉ RESTAURANT")
	assert.Contains(t, response.Report, "Chiffre d'affaires: 9.000 DT")
	assert.False(t, response.GeneratedAt.IsZero())
}
