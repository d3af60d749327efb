package store

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lacomanda/comanda/models"
	"github.com/lacomanda/comanda/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

var dbSeq int

// openTestDB returns a shared in-memory database; connections to the
// same name see the same data, which lets tests reopen the store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestOpenSeedsWhenEmpty(t *testing.T) {
	db := openTestDB(t)

	s, err := Open(db)
	require.NoError(t, err)

	orders := s.Orders()
	require.NotEmpty(t, orders)
	for _, o := range orders {
		assert.NotEmpty(t, o.ID)
		assert.NotEmpty(t, o.History)
		assert.Equal(t, o.Status, o.History[len(o.History)-1].Status)
	}
}

func TestRoundTripReproducesCollection(t *testing.T) {
	db := openTestDB(t)

	s1, err := Open(db)
	require.NoError(t, err)

	table := 7
	order := models.Order{
		ID:        "PED-RT000001",
		CreatedAt: time.Date(2024, 5, 10, 13, 30, 0, 0, time.UTC),
		Type:      models.TypeDineIn,
		Status:    models.StatusPreparing,
		Shift:     models.ShiftAfternoon,
		Customer:  models.Customer{Name: "Marco Díaz", Phone: "912999888", Table: &table},
		LineItems: []models.LineItem{
			{ProductID: "prod-004", Name: "Lomo Saltado", Quantity: 2, UnitPrice: 28.00,
				Addons: []models.Addon{{Name: "Ají de la casa", Price: 0}}, Notes: "sin cebolla"},
		},
		Total:            56.00,
		PaymentMethod:    models.PayCard,
		AssignedCook:     "Rafael",
		EstimatedMinutes: 15,
		Notes:            "cliente frecuente",
		PreparationArea:  models.AreaDiningRoom,
		History: []models.HistoryEntry{
			{Status: models.StatusNew, Timestamp: time.Date(2024, 5, 10, 13, 30, 0, 0, time.UTC), Actor: models.RoleCustomer},
			{Status: models.StatusConfirmed, Timestamp: time.Date(2024, 5, 10, 13, 31, 0, 0, time.UTC), Actor: models.RoleReception},
			{Status: models.StatusPreparing, Timestamp: time.Date(2024, 5, 10, 13, 33, 0, 0, time.UTC), Actor: models.RoleReception},
		},
	}
	require.NoError(t, s1.Insert(order))

	// A second store over the same database must load the identical
	// collection; ElapsedSeconds is recomputed continuously and is the
	// one field excluded from comparison.
	s2, err := Open(db)
	require.NoError(t, err)

	got, ok := s2.Get("PED-RT000001")
	require.True(t, ok)
	got.ElapsedSeconds = order.ElapsedSeconds
	assert.Equal(t, order, got)

	assert.Len(t, s2.Orders(), len(s1.Orders()))
}

func TestCommitIsAtomic(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	before := s.Orders()
	version := s.Version()

	err = s.Commit(func(orders []models.Order) ([]models.Order, error) {
		orders[0].Status = models.StatusCanceled
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	assert.Equal(t, before, s.Orders(), "failed commit must not change the collection")
	assert.Equal(t, version, s.Version())
}

func TestVersionIncrementsPerCommit(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	v := s.Version()
	require.NoError(t, s.Commit(func(orders []models.Order) ([]models.Order, error) {
		return orders, nil
	}))
	assert.Equal(t, v+1, s.Version())
}

func TestUpdateNotFound(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	_, err = s.Update("PED-MISSING", func(o models.Order) (models.Order, error) {
		return o, nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateErrorLeavesOrderUntouched(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	id := s.Orders()[0].ID
	before, _ := s.Get(id)

	_, err = s.Update(id, func(o models.Order) (models.Order, error) {
		o.Status = models.StatusCanceled
		return o, errors.New("rejected")
	})
	require.Error(t, err)

	after, _ := s.Get(id)
	assert.Equal(t, before, after)
}

func TestReplaceSwapsOrInserts(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	existing := s.Orders()[0]
	existing.Notes = "updated notes"
	require.NoError(t, s.Replace(existing))

	got, _ := s.Get(existing.ID)
	assert.Equal(t, "updated notes", got.Notes)

	count := len(s.Orders())
	fresh := existing
	fresh.ID = "PED-FRESH001"
	require.NoError(t, s.Replace(fresh))
	assert.Len(t, s.Orders(), count+1)
}

func TestGetReturnsCopy(t *testing.T) {
	db := openTestDB(t)
	s, err := Open(db)
	require.NoError(t, err)

	id := s.Orders()[0].ID
	first, _ := s.Get(id)
	first.History[0].Status = models.StatusCanceled
	first.LineItems[0].Quantity = 999

	second, _ := s.Get(id)
	assert.NotEqual(t, models.StatusCanceled, second.History[0].Status)
	assert.NotEqual(t, 999, second.LineItems[0].Quantity)
}
