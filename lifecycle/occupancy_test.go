package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacomanda/comanda/models"
)

func dineInAt(id string, table int, status models.Status, createdAt time.Time) models.Order {
	o := testOrder(models.TypeDineIn, status)
	o.ID = id
	o.Customer.Table = &table
	o.CreatedAt = createdAt
	return o
}

func TestTablesOccupiedWhileOrderOpen(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		dineInAt("PED-A", 7, models.StatusPreparing, now),
		dineInAt("PED-B", 2, models.StatusPaid, now),
	}

	tables := Tables(orders, []int{2, 7, 9})
	require.Len(t, tables, 3)

	assert.False(t, tables[0].Occupied, "paid order frees table 2")
	assert.Empty(t, tables[0].OpenOrderID)

	assert.True(t, tables[1].Occupied)
	assert.Equal(t, "PED-A", tables[1].OpenOrderID)

	assert.False(t, tables[2].Occupied, "table with no orders is free")
}

func TestTablesFreedByTerminalStatuses(t *testing.T) {
	now := time.Now()
	for _, status := range []models.Status{
		models.StatusDelivered, models.StatusPickedUp, models.StatusCanceled, models.StatusPaid,
	} {
		orders := []models.Order{dineInAt("PED-X", 5, status, now)}
		tables := Tables(orders, []int{5})
		assert.False(t, tables[0].Occupied, "status %s should free the table", status)
	}
}

func TestTablesIgnoreNonDineIn(t *testing.T) {
	o := testOrder(models.TypeDelivery, models.StatusPreparing)
	table := 5
	o.Customer.Table = &table // stale data; delivery never occupies

	tables := Tables([]models.Order{o}, []int{5})
	assert.False(t, tables[0].Occupied)
}

func TestTablesTieBreakNewestWins(t *testing.T) {
	now := time.Now()
	// Two open orders on one table should not happen; if it does, the
	// most recently created one wins deterministically.
	orders := []models.Order{
		dineInAt("PED-OLD", 3, models.StatusPreparing, now.Add(-time.Hour)),
		dineInAt("PED-NEW", 3, models.StatusConfirmed, now),
	}

	tables := Tables(orders, []int{3})
	require.True(t, tables[0].Occupied)
	assert.Equal(t, "PED-NEW", tables[0].OpenOrderID)
}

func TestOpenOrderForTable(t *testing.T) {
	now := time.Now()
	orders := []models.Order{dineInAt("PED-A", 7, models.StatusReady, now)}

	order, ok := OpenOrderForTable(orders, 7)
	require.True(t, ok)
	assert.Equal(t, "PED-A", order.ID)

	_, ok = OpenOrderForTable(orders, 8)
	assert.False(t, ok)
}
