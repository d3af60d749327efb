package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/lifecycle"
	"github.com/lacomanda/comanda/models"
	"github.com/lacomanda/comanda/store"
	"github.com/lacomanda/comanda/utils"
)

// BoardController serves the per-view filtered slices of the order
// collection. Boards never mutate; they request transitions through the
// order endpoints.
type BoardController struct {
	Store *store.Store
}

func NewBoardController(st *store.Store) *BoardController {
	return &BoardController{Store: st}
}

// GetWaitingBoard lists reception's queue: pending confirmation, new and
// confirmed orders of the requested shift.
func (bc *BoardController) GetWaitingBoard(c *gin.Context) {
	orders := bc.shiftOrders(c)
	utils.RespondJSON(c, http.StatusOK, "Waiting board", gin.H{
		"pending_confirmation": byStatus(orders, models.StatusPendingConfirmation),
		"new":                  byStatus(orders, models.StatusNew),
		"confirmed":            byStatus(orders, models.StatusConfirmed),
	})
}

// GetKitchenBoard lists the cooking columns, split by preparation area on
// the client; the server sends the three kitchen statuses.
func (bc *BoardController) GetKitchenBoard(c *gin.Context) {
	orders := bc.shiftOrders(c)
	utils.RespondJSON(c, http.StatusOK, "Kitchen board", gin.H{
		"preparing":          byStatus(orders, models.StatusPreparing),
		"assembling":         byStatus(orders, models.StatusAssembling),
		"ready_for_assembly": byStatus(orders, models.StatusReadyForAssembly),
	})
}

// GetDeliveryBoard lists delivery orders through dispatch: ready (waiting
// for a driver), en route and delivered.
func (bc *BoardController) GetDeliveryBoard(c *gin.Context) {
	orders := typed(bc.shiftOrders(c), models.TypeDelivery)
	utils.RespondJSON(c, http.StatusOK, "Delivery board", gin.H{
		"ready":     byStatus(orders, models.StatusReady),
		"en_route":  byStatus(orders, models.StatusEnRoute),
		"delivered": byStatus(orders, models.StatusDelivered),
	})
}

// GetPickupBoard lists pickup orders at the counter: ready and picked up.
func (bc *BoardController) GetPickupBoard(c *gin.Context) {
	orders := typed(bc.shiftOrders(c), models.TypePickup)
	utils.RespondJSON(c, http.StatusOK, "Pickup board", gin.H{
		"ready":     byStatus(orders, models.StatusReady),
		"picked_up": byStatus(orders, models.StatusPickedUp),
	})
}

// GetCashierBoard lists every open order grouped by type, across shifts,
// so the cashier can settle anything still unpaid.
func (bc *BoardController) GetCashierBoard(c *gin.Context) {
	orders := lifecycle.Project(bc.Store.Orders(), time.Now())
	open := orders[:0]
	for _, o := range orders {
		if o.IsOpen() {
			open = append(open, o)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Cashier board", gin.H{
		"dine_in":  typed(open, models.TypeDineIn),
		"delivery": typed(open, models.TypeDelivery),
		"pickup":   typed(open, models.TypePickup),
	})
}

// GetDashboard returns the shift's summary metrics.
func (bc *BoardController) GetDashboard(c *gin.Context) {
	orders := bc.shiftOrders(c)
	utils.RespondJSON(c, http.StatusOK, "Dashboard metrics", lifecycle.Summarize(orders, time.Now()))
}

// shiftOrders returns the projected collection scoped to the shift query
// parameter, defaulting to the shift the clock is in now.
func (bc *BoardController) shiftOrders(c *gin.Context) []models.Order {
	now := time.Now()
	shift := models.Shift(c.Query("shift"))
	if !shift.IsValid() {
		shift = lifecycle.ShiftAt(now)
	}
	orders := lifecycle.Project(bc.Store.Orders(), now)
	scoped := orders[:0]
	for _, o := range orders {
		if o.Shift == shift {
			scoped = append(scoped, o)
		}
	}
	return scoped
}

func byStatus(orders []models.Order, status models.Status) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func typed(orders []models.Order, t models.OrderType) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}
