package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacomanda/comanda/models"
)

func TestSettleCashComputesChange(t *testing.T) {
	order := testOrder(models.TypeDineIn, models.StatusReady)
	order.LineItems = []models.LineItem{
		{ProductID: "prod-007", Name: "Salchipapa", Quantity: 1, UnitPrice: 15.00},
		{ProductID: "prod-008", Name: "Porción de Papas", Quantity: 1, UnitPrice: 10.00},
	}
	order.RecalcTotal()
	require.Equal(t, 25.00, order.Total)

	now := time.Now()
	res, err := Settle(order, models.PayCash, 30.00, models.RoleAdmin, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPaid, res.Order.Status)
	require.NotNil(t, res.Order.Settlement)
	s := res.Order.Settlement
	assert.Equal(t, models.PayCash, s.Method)
	assert.Equal(t, 25.00, s.TotalAmount)
	assert.Equal(t, 30.00, s.AmountTendered)
	assert.Equal(t, 5.00, s.ChangeDue)
	assert.Equal(t, now, s.Timestamp)

	// settlement transition appends exactly one history entry
	assert.Len(t, res.Order.History, len(order.History)+1)
	assert.Equal(t, models.StatusPaid, res.Order.History[len(res.Order.History)-1].Status)
}

func TestSettleCashExactTenderNoChange(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusReady)

	res, err := Settle(order, models.PayCash, order.Total, models.RoleAdmin, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.00, res.Order.Settlement.ChangeDue)
}

func TestSettleRejectsInsufficientCash(t *testing.T) {
	order := testOrder(models.TypePickup, models.StatusReady)

	_, err := Settle(order, models.PayCash, order.Total-0.01, models.RoleAdmin, time.Now())
	assert.ErrorIs(t, err, ErrInsufficientTender)
}

func TestSettleNonCashIgnoresTender(t *testing.T) {
	order := testOrder(models.TypeDelivery, models.StatusDelivered)

	res, err := Settle(order, models.PayCard, 0, models.RoleAdmin, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.00, res.Order.Settlement.ChangeDue)
	assert.Equal(t, 0.00, res.Order.Settlement.AmountTendered)
}

func TestSettleRejectsAlreadyPaid(t *testing.T) {
	order := testOrder(models.TypeDineIn, models.StatusReady)

	res, err := Settle(order, models.PayCash, 100, models.RoleAdmin, time.Now())
	require.NoError(t, err)

	_, err = Settle(res.Order, models.PayCash, 100, models.RoleAdmin, time.Now())
	assert.ErrorIs(t, err, ErrSameStatus)
}

func TestSettleDineInNotifiesStaffTableFreed(t *testing.T) {
	order := testOrder(models.TypeDineIn, models.StatusReady)

	res, err := Settle(order, models.PayCash, 50, models.RoleAdmin, time.Now())
	require.NoError(t, err)
	require.NotNil(t, res.Notification)
	assert.Equal(t, AudienceStaff, res.Notification.Audience)
	assert.Equal(t, "Mesa 7 pagada y liberada.", res.Notification.Message)
}
