package store

import (
	"time"

	"github.com/lacomanda/comanda/models"
)

// SeedOrders is the built-in dataset used when no snapshot exists yet, so
// a fresh install has boards with something on them.
func SeedOrders(now time.Time) []models.Order {
	mesa3 := 3
	return []models.Order{
		{
			ID:        "PED-SEED0001",
			CreatedAt: now.Add(-10 * time.Minute),
			Type:      models.TypeDineIn,
			Status:    models.StatusPreparing,
			Shift:     models.ShiftAfternoon,
			Customer:  models.Customer{Name: "Carla Mendoza", Phone: "987654321", Table: &mesa3},
			LineItems: []models.LineItem{
				{ProductID: "prod-001", Name: "Pollo a la Brasa 1/4", Quantity: 2, UnitPrice: 22.00},
				{ProductID: "prod-009", Name: "Inca Kola 500ml", Quantity: 2, UnitPrice: 5.00},
			},
			Total:            54.00,
			PaymentMethod:    models.PayCard,
			EstimatedMinutes: 15,
			PreparationArea:  models.AreaDiningRoom,
			History: []models.HistoryEntry{
				{Status: models.StatusNew, Timestamp: now.Add(-10 * time.Minute), Actor: models.RoleReception},
				{Status: models.StatusConfirmed, Timestamp: now.Add(-9 * time.Minute), Actor: models.RoleReception},
				{Status: models.StatusPreparing, Timestamp: now.Add(-8 * time.Minute), Actor: models.RoleReception},
			},
		},
		{
			ID:        "PED-SEED0002",
			CreatedAt: now.Add(-25 * time.Minute),
			Type:      models.TypeDelivery,
			Status:    models.StatusReady,
			Shift:     models.ShiftAfternoon,
			Customer:  models.Customer{Name: "Jorge Quispe", Phone: "912345678", Address: "Av. Arequipa 1450, Lince"},
			LineItems: []models.LineItem{
				{ProductID: "prod-002", Name: "Pollo a la Brasa 1/2", Quantity: 1, UnitPrice: 40.00,
					Addons: []models.Addon{{Name: "Huancaína", Price: 2.50}}},
			},
			Total:            42.50,
			PaymentMethod:    models.PayCash,
			CashTendered:     50.00,
			EstimatedMinutes: 30,
			PreparationArea:  models.AreaDelivery,
			History: []models.HistoryEntry{
				{Status: models.StatusNew, Timestamp: now.Add(-25 * time.Minute), Actor: models.RoleCustomer},
				{Status: models.StatusConfirmed, Timestamp: now.Add(-23 * time.Minute), Actor: models.RoleReception},
				{Status: models.StatusPreparing, Timestamp: now.Add(-20 * time.Minute), Actor: models.RoleReception},
				{Status: models.StatusReady, Timestamp: now.Add(-5 * time.Minute), Actor: models.RoleCook},
			},
		},
		{
			ID:        "PED-SEED0003",
			CreatedAt: now.Add(-3 * time.Minute),
			Type:      models.TypePickup,
			Status:    models.StatusPendingConfirmation,
			Shift:     models.ShiftAfternoon,
			Customer:  models.Customer{Name: "Lucía Ramos", Phone: "934567812"},
			LineItems: []models.LineItem{
				{ProductID: "prod-006", Name: "Arroz Chaufa", Quantity: 1, UnitPrice: 20.00},
			},
			Total:            20.00,
			PaymentMethod:    models.PayCash,
			EstimatedMinutes: 15,
			PreparationArea:  models.AreaPickup,
			History: []models.HistoryEntry{
				{Status: models.StatusPendingConfirmation, Timestamp: now.Add(-3 * time.Minute), Actor: models.RoleCustomer},
			},
		},
	}
}
