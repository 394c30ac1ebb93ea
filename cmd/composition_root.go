package cmd

import (
	"context"
	"log/slog"

	httpadapter "caisse/internal/adapters/in/http"
	"caisse/internal/adapters/out/postgres"
	"caisse/internal/adapters/out/postgres/tablerepo"
	"caisse/internal/core/application/usecases/commands"
	"caisse/internal/core/application/usecases/queries"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, use-case handlers and adapters
// together. Each Create* method hands out a fresh handler bound to the
// shared database connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    product.Catalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    product.DefaultCatalog(),
	}
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTableUoWFactory() commands.OrderTableUoWFactory {
	return FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.sessionUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	return commands.NewUpdateCartQuantityCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSetCurrentTableCommandHandler() commands.SetCurrentTableCommandHandler {
	return commands.NewSetCurrentTableCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSetSelectedCustomerCommandHandler() commands.SetSelectedCustomerCommandHandler {
	return commands.NewSetSelectedCustomerCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateAddTableCommandHandler() commands.AddTableCommandHandler {
	return commands.NewAddTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTableStatusCommandHandler() commands.UpdateTableStatusCommandHandler {
	return commands.NewUpdateTableStatusCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateAssignServerCommandHandler() commands.AssignServerCommandHandler {
	return commands.NewAssignServerCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateAddClientsToTableCommandHandler() commands.AddClientsToTableCommandHandler {
	return commands.NewAddClientsToTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	return commands.NewCheckoutOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateResetLedgerCommandHandler() commands.ResetLedgerCommandHandler {
	return commands.NewResetLedgerCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTablesQueryHandler() queries.GetAllTablesQueryHandler {
	return queries.NewGetAllTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableByNumberQueryHandler() queries.GetTableByNumberQueryHandler {
	return queries.NewGetTableByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentTableOrdersQueryHandler() queries.GetCurrentTableOrdersQueryHandler {
	return queries.NewGetCurrentTableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetSalesReportQueryHandler(
		uow.OrderRepository(),
		uow.TableRepository(),
		uow.ClientRepository(),
	)
}

// CreateHTTPServer assembles the JSON API server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	readUoW := c.uowFactory.Create()

	return httpadapter.NewServer(
		httpadapter.Handlers{
			AddToCart:           c.CreateAddToCartCommandHandler(),
			RemoveFromCart:      c.CreateRemoveFromCartCommandHandler(),
			UpdateCartQuantity:  c.CreateUpdateCartQuantityCommandHandler(),
			ClearCart:           c.CreateClearCartCommandHandler(),
			SetCurrentTable:     c.CreateSetCurrentTableCommandHandler(),
			SetSelectedCustomer: c.CreateSetSelectedCustomerCommandHandler(),
			AddTable:            c.CreateAddTableCommandHandler(),
			UpdateTableStatus:   c.CreateUpdateTableStatusCommandHandler(),
			AssignServer:        c.CreateAssignServerCommandHandler(),
			AddClientsToTable:   c.CreateAddClientsToTableCommandHandler(),
			RegisterClient:      c.CreateRegisterClientCommandHandler(),
			CheckoutOrder:       c.CreateCheckoutOrderCommandHandler(),
			PayOrder:            c.CreatePayOrderCommandHandler(),
			ResetLedger:         c.CreateResetLedgerCommandHandler(),

			GetCart:               c.CreateGetCartQueryHandler(),
			GetAllTables:          c.CreateGetAllTablesQueryHandler(),
			GetTableByNumber:      c.CreateGetTableByNumberQueryHandler(),
			GetOrders:             c.CreateGetOrdersQueryHandler(),
			GetCurrentTableOrders: c.CreateGetCurrentTableOrdersQueryHandler(),
			GetSalesReport:        c.CreateGetSalesReportQueryHandler(),
		},
		c.catalog,
		readUoW.SessionRepository(),
		readUoW.OrderRepository(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSalesReportQueryHandler(), logger)
}

// SeedDefaultFloorPlan installs the default floor plan on a fresh database.
// An already-populated floor plan is left alone.
func (c *CompositionRoot) SeedDefaultFloorPlan(ctx context.Context) error {
	var count int64
	if err := c.gormDB.WithContext(ctx).Model(&tablerepo.TableDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	handler := c.CreateResetLedgerCommandHandler()
	return handler.Handle(ctx, commands.NewResetLedgerCommand())
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
