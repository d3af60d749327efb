package lifecycle

import (
	"sort"
	"time"

	"github.com/lacomanda/comanda/models"
)

// Metrics summarizes a shift's activity for the dashboard.
type Metrics struct {
	TotalOrders     int            `json:"total_orders"`
	CompletedOrders int            `json:"completed_orders"`
	InProcessOrders int            `json:"in_process_orders"`
	AvgPrepSeconds  int            `json:"avg_prep_seconds"`
	TopProducts     []ProductCount `json:"top_products"`
}

// ProductCount is a product's total ordered quantity, for the top list.
type ProductCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summarize computes dashboard metrics over the given orders. Completed
// means delivered, picked-up or paid; in-process excludes new and the
// terminal statuses. Average preparation time averages the elapsed age of
// orders that reached ready or beyond.
func Summarize(orders []models.Order, now time.Time) Metrics {
	m := Metrics{TotalOrders: len(orders)}

	var prepTotal, prepCount int
	counts := map[string]int{}
	for _, o := range orders {
		switch o.Status {
		case models.StatusDelivered, models.StatusPickedUp, models.StatusPaid:
			m.CompletedOrders++
		case models.StatusCanceled, models.StatusNew:
			// neither completed nor counted as in process
		default:
			m.InProcessOrders++
		}
		switch o.Status {
		case models.StatusReady, models.StatusDelivered, models.StatusPickedUp, models.StatusPaid:
			prepTotal += Elapsed(o, now)
			prepCount++
		}
		for _, li := range o.LineItems {
			counts[li.Name] += li.Quantity
		}
	}
	if prepCount > 0 {
		m.AvgPrepSeconds = prepTotal / prepCount
	}

	for name, qty := range counts {
		m.TopProducts = append(m.TopProducts, ProductCount{Name: name, Quantity: qty})
	}
	sort.Slice(m.TopProducts, func(i, j int) bool {
		if m.TopProducts[i].Quantity != m.TopProducts[j].Quantity {
			return m.TopProducts[i].Quantity > m.TopProducts[j].Quantity
		}
		return m.TopProducts[i].Name < m.TopProducts[j].Name
	})
	if len(m.TopProducts) > 5 {
		m.TopProducts = m.TopProducts[:5]
	}
	return m
}
