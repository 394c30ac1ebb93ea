package http

import (
	"time"

	"caisse/internal/core/application/usecases/queries"
	"caisse/internal/core/domain/model/product"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product represents one catalog entry in API responses. Prices carry both
// the raw millime amount and the display string.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceMillimes int64  `json:"price_millimes"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	VatRate       int    `json:"vat_rate"`
	Image         string `json:"image"`
}

// CartLine represents one cart or order line in API responses.
type CartLine struct {
	ProductID         string `json:"product_id"`
	Name              string `json:"name"`
	UnitPriceMillimes int64  `json:"unit_price_millimes"`
	UnitPrice         string `json:"unit_price"`
	VatRate           int    `json:"vat_rate"`
	Quantity          int    `json:"quantity"`
	SubtotalMillimes  int64  `json:"subtotal_millimes"`
	Subtotal          string `json:"subtotal"`
}

// VatBucket represents one per-rate tax bucket in API responses.
type VatBucket struct {
	Rate           int    `json:"rate"`
	AmountMillimes int64  `json:"amount_millimes"`
	Amount         string `json:"amount"`
}

// Cart represents the open cart with its derived figures.
type Cart struct {
	Lines         []CartLine  `json:"lines"`
	TotalMillimes int64       `json:"total_millimes"`
	Total         string      `json:"total"`
	VatBreakdown  []VatBucket `json:"vat_breakdown"`
}

// Table represents one table in API responses. The status carries the
// French label ("libre", "occupée", "réservée").
type Table struct {
	ID             string    `json:"id"`
	Number         int       `json:"number"`
	Status         string    `json:"status"`
	Clients        []string  `json:"clients"`
	Server         *string   `json:"server"`
	CurrentOrderID *string   `json:"current_order_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Order represents one order snapshot in API responses.
type Order struct {
	ID            string      `json:"id"`
	TableNumber   int         `json:"table_number"`
	ClientNames   []string    `json:"client_names"`
	Lines         []CartLine  `json:"lines"`
	TotalMillimes int64       `json:"total_millimes"`
	Total         string      `json:"total"`
	VatBreakdown  []VatBucket `json:"vat_breakdown"`
	Status        string      `json:"status"`
	Server        string      `json:"server"`
	CreatedAt     time.Time   `json:"created_at"`
	PaidAt        *time.Time  `json:"paid_at"`
}

// Session represents the terminal session selections.
type Session struct {
	CurrentTable     *int    `json:"current_table"`
	Server           string  `json:"server"`
	SelectedCustomer *string `json:"selected_customer"`
}

// SalesReport carries the derived figures and the shareable report text.
type SalesReport struct {
	PendingCount         int       `json:"pending_count"`
	PaidCount            int       `json:"paid_count"`
	RevenueMillimes      int64     `json:"revenue_millimes"`
	Revenue              string    `json:"revenue"`
	AverageOrderMillimes int64     `json:"average_order_millimes"`
	AverageOrder         string    `json:"average_order"`
	ConversionRate       float64   `json:"conversion_rate"`
	OccupiedTables       int       `json:"occupied_tables"`
	FreeTables           int       `json:"free_tables"`
	TotalTables          int       `json:"total_tables"`
	ActiveClients        int       `json:"active_clients"`
	Report               string    `json:"report"`
	GeneratedAt          time.Time `json:"generated_at"`
}

// AddToCartRequest adds one unit of a catalog product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

// UpdateQuantityRequest overrides a cart line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddTableRequest appends a table to the floor plan.
type AddTableRequest struct {
	Number int `json:"number"`
}

// UpdateTableStatusRequest applies a manual status override using the
// French label.
type UpdateTableStatusRequest struct {
	Status string `json:"status"`
}

// AssignServerRequest assigns a server to a table.
type AssignServerRequest struct {
	Server string `json:"server"`
}

// AddClientsRequest seats clients at a table.
type AddClientsRequest struct {
	Names []string `json:"names"`
}

// CheckoutRequest turns the open cart into a pending order. The optional
// names join the session's selected customer on the order.
type CheckoutRequest struct {
	ClientNames []string `json:"client_names"`
}

// RegisterClientRequest appends a client to the roster.
type RegisterClientRequest struct {
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	TableNumber *int    `json:"table_number"`
}

// SelectTableRequest sets or clears the session's current table.
type SelectTableRequest struct {
	Number *int `json:"number"`
}

// SelectCustomerRequest sets or clears the session's selected customer.
type SelectCustomerRequest struct {
	Name *string `json:"name"`
}

func productResponse(p product.Product) Product {
	return Product{
		ID:            p.ID(),
		Name:          p.Name(),
		PriceMillimes: p.Price().Millimes(),
		Price:         p.Price().String(),
		Category:      p.Category(),
		VatRate:       p.VatRate().Percent(),
		Image:         p.Image(),
	}
}

func cartLineResponses(lines []queries.CartLineResponse) []CartLine {
	responses := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, CartLine{
			ProductID:         line.ProductID,
			Name:              line.Name,
			UnitPriceMillimes: line.UnitPrice.Millimes(),
			UnitPrice:         line.UnitPrice.String(),
			VatRate:           line.VatRate.Percent(),
			Quantity:          line.Quantity,
			SubtotalMillimes:  line.Subtotal.Millimes(),
			Subtotal:          line.Subtotal.String(),
		})
	}
	return responses
}

func vatBucketResponses(buckets []queries.VatBucketResponse) []VatBucket {
	responses := make([]VatBucket, 0, len(buckets))
	for _, bucket := range buckets {
		responses = append(responses, VatBucket{
			Rate:           bucket.Rate.Percent(),
			AmountMillimes: bucket.Amount.Millimes(),
			Amount:         bucket.Amount.String(),
		})
	}
	return responses
}

func cartResponse(cart queries.GetCartQueryResponse) Cart {
	return Cart{
		Lines:         cartLineResponses(cart.Lines),
		TotalMillimes: cart.Total.Millimes(),
		Total:         cart.Total.String(),
		VatBreakdown:  vatBucketResponses(cart.VatBreakdown),
	}
}

func tableResponse(t queries.TableResponse) Table {
	var orderID *string
	if t.CurrentOrderID != nil {
		id := t.CurrentOrderID.String()
		orderID = &id
	}

	return Table{
		ID:             t.ID,
		Number:         t.Number.Int(),
		Status:         t.Status.String(),
		Clients:        t.Clients,
		Server:         t.Server,
		CurrentOrderID: orderID,
		CreatedAt:      t.CreatedAt,
	}
}

func orderResponse(o queries.OrderResponse) Order {
	return Order{
		ID:            o.ID.String(),
		TableNumber:   o.TableNumber.Int(),
		ClientNames:   o.ClientNames,
		Lines:         cartLineResponses(o.Lines),
		TotalMillimes: o.Total.Millimes(),
		Total:         o.Total.String(),
		VatBreakdown:  vatBucketResponses(o.VatBreakdown),
		Status:        o.Status.String(),
		Server:        o.Server,
		CreatedAt:     o.CreatedAt,
		PaidAt:        o.PaidAt,
	}
}

func orderResponses(orders []queries.OrderResponse) []Order {
	responses := make([]Order, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, orderResponse(o))
	}
	return responses
}
