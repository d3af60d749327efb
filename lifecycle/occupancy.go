package lifecycle

import (
	"github.com/lacomanda/comanda/models"
)

// Tables derives the occupancy view for the given table numbers: a table
// is occupied while a dine-in order referencing it is in a non-terminal
// status. Should two open orders ever reference the same table (the
// invariant says they must not), the most recently created one wins, so
// the derivation stays deterministic.
func Tables(orders []models.Order, numbers []int) []models.Table {
	tables := make([]models.Table, 0, len(numbers))
	for _, n := range numbers {
		table := models.Table{Number: n}
		var newest *models.Order
		for i := range orders {
			o := &orders[i]
			if o.Type != models.TypeDineIn || !o.IsOpen() {
				continue
			}
			if o.Customer.Table == nil || *o.Customer.Table != n {
				continue
			}
			if newest == nil || o.CreatedAt.After(newest.CreatedAt) {
				newest = o
			}
		}
		if newest != nil {
			table.Occupied = true
			table.OpenOrderID = newest.ID
		}
		tables = append(tables, table)
	}
	return tables
}

// OpenOrderForTable returns the open dine-in order occupying a table, if
// any. Used by the POS flow to load an existing table order.
func OpenOrderForTable(orders []models.Order, number int) (models.Order, bool) {
	for _, t := range Tables(orders, []int{number}) {
		if t.Occupied {
			for _, o := range orders {
				if o.ID == t.OpenOrderID {
					return o, true
				}
			}
		}
	}
	return models.Order{}, false
}
