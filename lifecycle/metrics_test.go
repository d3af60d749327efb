package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacomanda/comanda/models"
)

func TestSummarize(t *testing.T) {
	now := time.Now()

	delivered := testOrder(models.TypeDelivery, models.StatusDelivered)
	delivered.CreatedAt = now.Add(-10 * time.Minute)

	preparing := testOrder(models.TypeDineIn, models.StatusPreparing)
	preparing.LineItems = []models.LineItem{
		{ProductID: "prod-009", Name: "Inca Kola 500ml", Quantity: 3, UnitPrice: 5.00},
	}

	fresh := testOrder(models.TypePickup, models.StatusNew)
	canceled := testOrder(models.TypePickup, models.StatusCanceled)

	m := Summarize([]models.Order{delivered, preparing, fresh, canceled}, now)

	assert.Equal(t, 4, m.TotalOrders)
	assert.Equal(t, 1, m.CompletedOrders)
	assert.Equal(t, 1, m.InProcessOrders, "new and canceled are not in process")
	assert.Equal(t, 600, m.AvgPrepSeconds, "only the delivered order reached ready or beyond")

	require.NotEmpty(t, m.TopProducts)
	assert.Equal(t, "Inca Kola 500ml", m.TopProducts[0].Name)
	assert.Equal(t, 3, m.TopProducts[0].Quantity)
}

func TestSummarizeEmpty(t *testing.T) {
	m := Summarize(nil, time.Now())
	assert.Equal(t, 0, m.TotalOrders)
	assert.Equal(t, 0, m.AvgPrepSeconds)
	assert.Empty(t, m.TopProducts)
}
