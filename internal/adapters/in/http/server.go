// Package http exposes the ledger over a JSON API. Handlers translate
// requests into commands and queries; no business rules live here.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"caisse/internal/core/application/usecases/commands"
	"caisse/internal/core/application/usecases/queries"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/core/ports"
	"caisse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	AddToCart           commands.AddToCartCommandHandler
	RemoveFromCart      commands.RemoveFromCartCommandHandler
	UpdateCartQuantity  commands.UpdateCartQuantityCommandHandler
	ClearCart           commands.ClearCartCommandHandler
	SetCurrentTable     commands.SetCurrentTableCommandHandler
	SetSelectedCustomer commands.SetSelectedCustomerCommandHandler
	AddTable            commands.AddTableCommandHandler
	UpdateTableStatus   commands.UpdateTableStatusCommandHandler
	AssignServer        commands.AssignServerCommandHandler
	AddClientsToTable   commands.AddClientsToTableCommandHandler
	RegisterClient      commands.RegisterClientCommandHandler
	CheckoutOrder       commands.CheckoutOrderCommandHandler
	PayOrder            commands.PayOrderCommandHandler
	ResetLedger         commands.ResetLedgerCommandHandler

	GetCart               queries.GetCartQueryHandler
	GetAllTables          queries.GetAllTablesQueryHandler
	GetTableByNumber      queries.GetTableByNumberQueryHandler
	GetOrders             queries.GetOrdersQueryHandler
	GetCurrentTableOrders queries.GetCurrentTableOrdersQueryHandler
	GetSalesReport        queries.GetSalesReportQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
// The session and order repositories are read directly for the session
// view and the receipt rendering, outside of any transaction.
type Server struct {
	handlers    Handlers
	catalog     product.Catalog
	sessionRepo ports.SessionRepository
	orderRepo   ports.OrderRepository
}

// NewServer creates a new HTTP server with the required handlers, the
// product catalog and the read-only repositories.
func NewServer(
	handlers Handlers,
	catalog product.Catalog,
	sessionRepo ports.SessionRepository,
	orderRepo ports.OrderRepository,
) *Server {
	return &Server{
		handlers:    handlers,
		catalog:     catalog,
		sessionRepo: sessionRepo,
		orderRepo:   orderRepo,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.PATCH("/cart/items/:productId", s.UpdateCartQuantity)
	api.DELETE("/cart/items/:productId", s.RemoveFromCart)
	api.DELETE("/cart", s.ClearCart)

	api.GET("/session", s.GetSession)
	api.PUT("/session/current-table", s.SelectTable)
	api.PUT("/session/customer", s.SelectCustomer)

	api.GET("/tables", s.GetTables)
	api.POST("/tables", s.AddTable)
	api.GET("/tables/:number", s.GetTable)
	api.PATCH("/tables/:number/status", s.UpdateTableStatus)
	api.PATCH("/tables/:number/server", s.AssignServer)
	api.POST("/tables/:number/clients", s.AddTableClients)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/current-table", s.GetCurrentTableOrders)
	api.POST("/orders/checkout", s.Checkout)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.GET("/orders/:id/receipt.png", s.GetReceiptQR)

	api.POST("/clients", s.RegisterClient)

	api.GET("/report", s.GetReport)
	api.POST("/reset", s.ResetLedger)
}

// GetProducts handles GET /api/v1/products - lists the fixed catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products := s.catalog.All()
	response := make([]Product, 0, len(products))
	for _, p := range products {
		response = append(response, productResponse(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - reads the open cart.
func (s *Server) GetCart(ctx echo.Context) error {
	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), queries.NewGetCartQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, cartResponse(cart))
}

// AddToCart handles POST /api/v1/cart/items - adds one unit of a product.
func (s *Server) AddToCart(ctx echo.Context) error {
	var request AddToCartRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddToCartCommand(request.ProductID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartQuantity handles PATCH /api/v1/cart/items/:productId.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	var request UpdateQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(ctx.Param("productId"), request.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.UpdateCartQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/:productId.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	cmd, err := commands.NewRemoveFromCartCommand(ctx.Param("productId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), commands.NewClearCartCommand()); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session - reads the terminal selections.
func (s *Server) GetSession(ctx echo.Context) error {
	session, err := s.sessionRepo.Get(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	var currentTable *int
	if number := session.CurrentTable(); number != nil {
		n := number.Int()
		currentTable = &n
	}

	return ctx.JSON(http.StatusOK, Session{
		CurrentTable:     currentTable,
		Server:           session.Server(),
		SelectedCustomer: session.SelectedCustomer(),
	})
}

// SelectTable handles PUT /api/v1/session/current-table. A null number
// clears the selection.
func (s *Server) SelectTable(ctx echo.Context) error {
	var request SelectTableRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var number *kernel.TableNumber
	if request.Number != nil {
		n, err := kernel.NewTableNumber(*request.Number)
		if err != nil {
			return s.respondError(ctx, err)
		}
		number = &n
	}

	cmd, err := commands.NewSetCurrentTableCommand(number)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.SetCurrentTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SelectCustomer handles PUT /api/v1/session/customer. A null name clears
// the selection.
func (s *Server) SelectCustomer(ctx echo.Context) error {
	var request SelectCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetSelectedCustomerCommand(request.Name)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.SetSelectedCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTables handles GET /api/v1/tables - lists the floor plan.
func (s *Server) GetTables(ctx echo.Context) error {
	tables, err := s.handlers.GetAllTables.Handle(ctx.Request().Context(), queries.NewGetAllTablesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Table, 0, len(tables))
	for _, t := range tables {
		response = append(response, tableResponse(t))
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddTable handles POST /api/v1/tables - appends a table to the floor plan.
// Adding an existing number is a no-op.
func (s *Server) AddTable(ctx echo.Context) error {
	var request AddTableRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	number, err := kernel.NewTableNumber(request.Number)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAddTableCommand(number)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AddTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetTable handles GET /api/v1/tables/:number.
func (s *Server) GetTable(ctx echo.Context) error {
	number, err := s.tableNumberParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid table number")
	}

	query, err := queries.NewGetTableByNumberQuery(number)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.handlers.GetTableByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tableResponse(response))
}

// UpdateTableStatus handles PATCH /api/v1/tables/:number/status.
func (s *Server) UpdateTableStatus(ctx echo.Context) error {
	number, err := s.tableNumberParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid table number")
	}

	var request UpdateTableStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := table.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateTableStatusCommand(number, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.UpdateTableStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignServer handles PATCH /api/v1/tables/:number/server.
func (s *Server) AssignServer(ctx echo.Context) error {
	number, err := s.tableNumberParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid table number")
	}

	var request AssignServerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignServerCommand(number, request.Server)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AssignServer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddTableClients handles POST /api/v1/tables/:number/clients.
func (s *Server) AddTableClients(ctx echo.Context) error {
	number, err := s.tableNumberParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid table number")
	}

	var request AddClientsRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddClientsToTableCommand(number, request.Names)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.AddClientsToTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by ?status=pending|preparing|ready|paid.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return s.respondError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderResponses(orders))
}

// GetCurrentTableOrders handles GET /api/v1/orders/current-table.
func (s *Server) GetCurrentTableOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetCurrentTableOrders.Handle(
		ctx.Request().Context(),
		queries.NewGetCurrentTableOrdersQuery(),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderResponses(orders))
}

// Checkout handles POST /api/v1/orders/checkout - freezes the cart into a
// pending order bound to the session's current table.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCheckoutOrderCommand(kernel.NewUUID(), request.ClientNames)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CheckoutOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// PayOrder handles POST /api/v1/orders/:id/pay - settles a pending order.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.PayOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetReceiptQR handles GET /api/v1/orders/:id/receipt.png - renders the
// order's receipt as a QR code image.
func (s *Server) GetReceiptQR(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	o, err := s.orderRepo.Get(ctx.Request().Context(), orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	png, err := qrcode.Encode(receiptText(o), qrcode.Medium, 256)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, "image/png", png)
}

// RegisterClient handles POST /api/v1/clients - appends a roster entry.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var request RegisterClientRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var number *kernel.TableNumber
	if request.TableNumber != nil {
		n, err := kernel.NewTableNumber(*request.TableNumber)
		if err != nil {
			return s.respondError(ctx, err)
		}
		number = &n
	}

	cmd, err := commands.NewRegisterClientCommand(
		kernel.NewUUID(),
		request.Name,
		request.Phone,
		request.Email,
		number,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.handlers.RegisterClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetReport handles GET /api/v1/report - builds the daily sales report.
func (s *Server) GetReport(ctx echo.Context) error {
	response, err := s.handlers.GetSalesReport.Handle(
		ctx.Request().Context(),
		queries.NewGetSalesReportQuery(),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SalesReport{
		PendingCount:         response.Stats.PendingCount,
		PaidCount:            response.Stats.PaidCount,
		RevenueMillimes:      response.Stats.Revenue.Millimes(),
		Revenue:              response.Stats.Revenue.String(),
		AverageOrderMillimes: response.Stats.AverageOrder.Millimes(),
		AverageOrder:         response.Stats.AverageOrder.String(),
		ConversionRate:       response.Stats.ConversionRate,
		OccupiedTables:       response.Stats.OccupiedTables,
		FreeTables:           response.Stats.FreeTables,
		TotalTables:          response.Stats.TotalTables,
		ActiveClients:        response.Stats.ActiveClients,
		Report:               response.Report,
		GeneratedAt:          response.GeneratedAt,
	})
}

// ResetLedger handles POST /api/v1/reset - wipes the ledger and reseeds
// the default floor plan.
func (s *Server) ResetLedger(ctx echo.Context) error {
	if err := s.handlers.ResetLedger.Handle(ctx.Request().Context(), commands.NewResetLedgerCommand()); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) tableNumberParam(ctx echo.Context) (kernel.TableNumber, error) {
	raw, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return 0, err
	}
	return kernel.NewTableNumber(raw)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain and use-case errors onto HTTP status codes.
// Lookups that miss map to 404, rejected state transitions to 409 and
// validation failures to 400; anything else is a 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrTableNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrNoTableSelected),
		errors.Is(err, order.ErrOrderAlreadyPaid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrProductIDIsRequired),
		errors.Is(err, commands.ErrClientNameIsRequired),
		errors.Is(err, commands.ErrClientNamesAreRequired),
		errors.Is(err, commands.ErrServerNameIsRequired),
		errors.Is(err, commands.ErrCustomerNameIsBlank):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// orderFromDomain maps a freshly created aggregate to the API shape without
// a read-side round trip.
func orderFromDomain(o *order.Order) Order {
	lines := make([]CartLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		p := line.Product()
		lines = append(lines, CartLine{
			ProductID:         p.ID(),
			Name:              p.Name(),
			UnitPriceMillimes: p.Price().Millimes(),
			UnitPrice:         p.Price().String(),
			VatRate:           p.VatRate().Percent(),
			Quantity:          line.Quantity(),
			SubtotalMillimes:  line.Subtotal().Millimes(),
			Subtotal:          line.Subtotal().String(),
		})
	}

	buckets := make([]VatBucket, 0, len(o.VatBreakdown()))
	for _, bucket := range o.VatBreakdown() {
		buckets = append(buckets, VatBucket{
			Rate:           bucket.Rate().Percent(),
			AmountMillimes: bucket.Amount().Millimes(),
			Amount:         bucket.Amount().String(),
		})
	}

	return Order{
		ID:            o.ID().String(),
		TableNumber:   o.TableNumber().Int(),
		ClientNames:   o.ClientNames(),
		Lines:         lines,
		TotalMillimes: o.Total().Millimes(),
		Total:         o.Total().String(),
		VatBreakdown:  buckets,
		Status:        o.Status().String(),
		Server:        o.Server(),
		CreatedAt:     o.CreatedAt(),
		PaidAt:        o.PaidAt(),
	}
}

// receiptText renders the plain-text receipt embedded in the QR code.
func receiptText(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CAFÉ RESTAURANT\n")
	fmt.Fprintf(&b, "Reçu %s\n", o.ID())
	fmt.Fprintf(&b, "Table %d - Serveur: %s\n", o.TableNumber().Int(), o.Server())
	fmt.Fprintf(&b, "Date: %s\n\n", o.CreatedAt().Format("02/01/2006 15:04"))

	for _, line := range o.Lines() {
		fmt.Fprintf(&b, "%dx %s - %s DT\n", line.Quantity(), line.Product().Name(), line.Subtotal())
	}

	b.WriteString("\n")
	for _, bucket := range o.VatBreakdown() {
		if bucket.Amount().IsZero() {
			continue
		}
		fmt.Fprintf(&b, "TVA %d%%: %s DT\n", bucket.Rate().Percent(), bucket.Amount())
	}

	fmt.Fprintf(&b, "TOTAL: %s DT\n", o.Total())
	if at := o.PaidAt(); at != nil {
		fmt.Fprintf(&b, "Payé à %s\n", at.Format("15:04"))
	}

	return b.String()
}
