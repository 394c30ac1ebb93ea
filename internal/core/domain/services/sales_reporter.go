package services

import (
	"fmt"
	"strings"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/table"
)

// lastPaidOrdersShown bounds the tail of settled orders listed in the report.
const lastPaidOrdersShown = 5

// SalesReporter is a domain service that renders the daily sales report from
// a ledger snapshot. It only reads: the counters, the revenue and the table
// occupancy are derived on the spot and nothing is mutated.
//
// Business rules:
//   - Revenue counts paid orders only
//   - The average is revenue divided by the number of paid orders
//   - The conversion rate is paid orders over all orders
//   - Only the last few paid orders are listed, oldest first
type SalesReporter struct{}

// NewSalesReporter creates a new SalesReporter instance.
func NewSalesReporter() SalesReporter {
	return SalesReporter{}
}

// SalesStats carries the derived figures of one report run.
type SalesStats struct {
	PendingCount   int
	PaidCount      int
	Revenue        kernel.Money
	AverageOrder   kernel.Money
	ConversionRate float64
	OccupiedTables int
	FreeTables     int
	TotalTables    int
	ActiveClients  int
}

// Stats derives the report figures from the given ledger snapshot.
func (s SalesReporter) Stats(orders []*order.Order, tables []*table.Table, clientCount int) SalesStats {
	stats := SalesStats{
		TotalTables:   len(tables),
		ActiveClients: clientCount,
	}

	for _, o := range orders {
		switch o.Status() {
		case order.Pending:
			stats.PendingCount++
		case order.Paid:
			stats.PaidCount++
			stats.Revenue = stats.Revenue.Add(o.Total())
		}
	}

	if stats.PaidCount > 0 {
		stats.AverageOrder = stats.Revenue.DivRound(int64(stats.PaidCount))
	}
	if len(orders) > 0 {
		stats.ConversionRate = float64(stats.PaidCount) / float64(len(orders)) * 100
	}

	for _, t := range tables {
		switch t.Status() {
		case table.Occupied:
			stats.OccupiedTables++
		case table.Free:
			stats.FreeTables++
		}
	}

	return stats
}

// Report renders the French daily report text the floor manager shares at
// closing time. generatedAt stamps the header; orders are expected in
// creation order.
func (s SalesReporter) Report(
	orders []*order.Order,
	tables []*table.Table,
	clientCount int,
	generatedAt time.Time,
) string {
	stats := s.Stats(orders, tables, clientCount)

	var b strings.Builder
	fmt.Fprintf(&b, "RAPPORT JOURNALIER - CAFÉ RESTAURANT\n")
	fmt.Fprintf(&b, "Date: %s\n", generatedAt.Format("02/01/2006"))
	fmt.Fprintf(&b, "Heure de génération: %s\n\n", generatedAt.Format("15:04:05"))

	fmt.Fprintf(&b, "STATISTIQUES PRINCIPALES:\n")
	fmt.Fprintf(&b, "Commandes en attente: %d\n", stats.PendingCount)
	fmt.Fprintf(&b, "Commandes payées: %d\n", stats.PaidCount)
	fmt.Fprintf(&b, "Chiffre d'affaires: %s DT\n", stats.Revenue)
	fmt.Fprintf(&b, "Tables occupées: %d/%d\n\n", stats.OccupiedTables, stats.TotalTables)

	fmt.Fprintf(&b, "CHIFFRE D'AFFAIRES:\n")
	fmt.Fprintf(&b, "Total: %s DT\n", stats.Revenue)
	fmt.Fprintf(&b, "Moyenne/commande: %s DT\n", stats.AverageOrder)
	fmt.Fprintf(&b, "Taux de conversion: %.1f%%\n\n", stats.ConversionRate)

	fmt.Fprintf(&b, "ÉTAT DES TABLES:\n")
	fmt.Fprintf(&b, "Occupées: %d\n", stats.OccupiedTables)
	fmt.Fprintf(&b, "Libres: %d\n", stats.FreeTables)
	fmt.Fprintf(&b, "Total: %d\n\n", stats.TotalTables)

	fmt.Fprintf(&b, "CLIENTS:\n")
	fmt.Fprintf(&b, "Clients actifs: %d\n\n", stats.ActiveClients)

	pending := filterByStatus(orders, order.Pending)
	fmt.Fprintf(&b, "COMMANDES EN ATTENTE (%d):\n", len(pending))
	for i, o := range pending {
		fmt.Fprintf(&b, "%d. Table %d - %s DT - %d article(s)\n", i+1, o.TableNumber().Int(), o.Total(), len(o.Lines()))
	}

	paid := filterByStatus(orders, order.Paid)
	if len(paid) > lastPaidOrdersShown {
		paid = paid[len(paid)-lastPaidOrdersShown:]
	}
	fmt.Fprintf(&b, "\nDERNIÈRES COMMANDES PAYÉES:\n")
	for i, o := range paid {
		paidAt := ""
		if at := o.PaidAt(); at != nil {
			paidAt = at.Format("15:04")
		}
		fmt.Fprintf(&b, "%d. Table %d - %s DT - %s\n", i+1, o.TableNumber().Int(), o.Total(), paidAt)
	}

	return b.String()
}

func filterByStatus(orders []*order.Order, status order.Status) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
