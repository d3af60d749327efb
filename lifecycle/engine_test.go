package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacomanda/comanda/models"
)

func testOrder(t models.OrderType, status models.Status) models.Order {
	created := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	table := 7
	o := models.Order{
		ID:        "PED-TEST0001",
		CreatedAt: created,
		Type:      t,
		Status:    status,
		Shift:     models.ShiftAfternoon,
		Customer:  models.Customer{Name: "Ana Torres", Phone: "987111222"},
		LineItems: []models.LineItem{
			{ProductID: "prod-004", Name: "Lomo Saltado", Quantity: 1, UnitPrice: 28.00},
		},
		PaymentMethod:    models.PayCash,
		EstimatedMinutes: 15,
		PreparationArea:  models.AreaFor(t),
		History: []models.HistoryEntry{
			{Status: status, Timestamp: created, Actor: models.RoleReception},
		},
	}
	switch t {
	case models.TypeDineIn:
		o.Customer.Table = &table
	case models.TypeDelivery:
		o.Customer.Address = "Jr. Unión 550"
	}
	o.RecalcTotal()
	return o
}

func TestTransitionAppendsHistory(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusNew)
	now := time.Now()

	res, err := Transition(order, models.StatusConfirmed, models.RoleReception, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, res.Order.Status)
	require.Len(t, res.Order.History, 2)
	last := res.Order.History[len(res.Order.History)-1]
	assert.Equal(t, models.StatusConfirmed, last.Status)
	assert.Equal(t, models.RoleReception, last.Actor)
	assert.Equal(t, now, last.Timestamp)

	// the input order is untouched
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Len(t, order.History, 1)
}

func TestTransitionRejectsSameStatus(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusReady)

	_, err := Transition(order, models.StatusReady, models.RoleCook, time.Now())
	assert.ErrorIs(t, err, ErrSameStatus)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusNew)

	_, err := Transition(order, models.Status("in-limbo"), models.RoleAdmin, time.Now())
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTransitionIsPermissiveAcrossTheBoard(t *testing.T) {
	// The kitchen board drags any card straight to ready; the engine
	// accepts the jump from any non-ready status without a graph check.
	for _, from := range []models.Status{
		models.StatusPendingConfirmation,
		models.StatusNew,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusAssembling,
		models.StatusReadyForAssembly,
	} {
		order := testOrder(models.TypeDineIn, from)
		res, err := Transition(order, models.StatusReady, models.RoleCook, time.Now())
		require.NoError(t, err, "from %s", from)
		assert.Equal(t, models.StatusReady, res.Order.Status)
	}
}

func TestTransitionCancelFromNonTerminal(t *testing.T) {
	order := testOrder(models.TypeDelivery, models.StatusPreparing)

	res, err := Transition(order, models.StatusCanceled, models.RoleAdmin, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, res.Order.Status)
	assert.Nil(t, res.Notification)
}

func TestEnRouteRequiresDriver(t *testing.T) {
	order := testOrder(models.TypeDelivery, models.StatusReady)

	_, err := Transition(order, models.StatusEnRoute, models.RoleDriver, time.Now())
	assert.ErrorIs(t, err, ErrDriverRequired)

	order.AssignedDriver = "Luis"
	res, err := Transition(order, models.StatusEnRoute, models.RoleDriver, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnRoute, res.Order.Status)
	assert.Len(t, res.Order.History, 2)
}

func TestEnRouteRejectedForNonDelivery(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusReady)
	order.AssignedDriver = "Luis"

	_, err := Transition(order, models.StatusEnRoute, models.RoleDriver, time.Now())
	assert.ErrorIs(t, err, ErrNotDelivery)
}

func TestPaidUnreachableWithoutSettlement(t *testing.T) {
	order := testOrder(models.TypeDineIn, models.StatusReady)

	_, err := Transition(order, models.StatusPaid, models.RoleAdmin, time.Now())
	assert.ErrorIs(t, err, ErrSettlementRequired)
}

func TestElapsedIsAPureProjection(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusNew)

	assert.Equal(t, 90, Elapsed(order, order.CreatedAt.Add(90*time.Second)))
	assert.Equal(t, 90, Elapsed(order, order.CreatedAt.Add(90*time.Second))) // idempotent
	assert.Equal(t, 0, Elapsed(order, order.CreatedAt.Add(-time.Minute)))
}

func TestProjectRefreshesWholeCollection(t *testing.T) {
	a := testOrder(models.TypePickup, models.StatusNew)
	b := testOrder(models.TypeDelivery, models.StatusReady)
	b.CreatedAt = a.CreatedAt.Add(-5 * time.Minute)

	out := Project([]models.Order{a, b}, a.CreatedAt.Add(time.Minute))
	assert.Equal(t, 60, out[0].ElapsedSeconds)
	assert.Equal(t, 360, out[1].ElapsedSeconds)
}
