package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/catalog"
	"github.com/lacomanda/comanda/kds"
	"github.com/lacomanda/comanda/lifecycle"
	"github.com/lacomanda/comanda/models"
	"github.com/lacomanda/comanda/store"
	"github.com/lacomanda/comanda/utils"
)

type OrderController struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewOrderController(st *store.Store, cat *catalog.Catalog) *OrderController {
	return &OrderController{Store: st, Catalog: cat}
}

// GetAllOrders lists orders, optionally filtered by shift, status and
// type. Elapsed times are projected against the current clock.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders := lifecycle.Project(oc.Store.Orders(), time.Now())

	shift := models.Shift(c.Query("shift"))
	status := models.Status(c.Query("status"))
	otype := models.OrderType(c.Query("type"))

	filtered := orders[:0]
	for _, o := range orders {
		if shift != "" && o.Shift != shift {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		if otype != "" && o.Type != otype {
			continue
		}
		filtered = append(filtered, o)
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", filtered)
}

// GetOrderByID returns one order with its full history.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := oc.Store.Get(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, store.ErrNotFound)
		return
	}
	order.ElapsedSeconds = lifecycle.Elapsed(order, time.Now())
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder is the customer-facing checkout: validates the draft,
// snapshots prices, applies the risk policy for the initial status. For
// dine-in the requested table must be free.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var draft lifecycle.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	now := time.Now()
	order, err := lifecycle.NewOrder(draft, oc.Catalog, lifecycle.ShiftAt(now), models.RoleCustomer, now)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.insertCheckingTable(order); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	kds.BroadcastOrderCreated(order)
	oc.broadcastDerived()

	msg := "Nuevo pedido " + order.ID + " recibido."
	if order.Status == models.StatusPendingConfirmation {
		msg = "Pedido " + order.ID + " pendiente de confirmación."
	}
	utils.RespondJSON(c, http.StatusCreated, msg, order)
}

// CreatePOSOrder is the staff point-of-sale flow for a dine-in table:
// if the table already has an open order its items are replaced and the
// updated ticket goes back to the kitchen, otherwise a new order is
// created directly in confirmed.
func (oc *OrderController) CreatePOSOrder(c *gin.Context) {
	var draft lifecycle.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	now := time.Now()
	order, err := lifecycle.NewStaffOrder(draft, oc.Catalog, lifecycle.ShiftAt(now), now)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// An open order on the same table means this is a resubmission: keep
	// that order's identity and history, swap in the new items.
	if order.Type == models.TypeDineIn {
		if existing, ok := lifecycle.OpenOrderForTable(oc.Store.Orders(), *order.Customer.Table); ok {
			updated, err := oc.Store.Update(existing.ID, func(o models.Order) (models.Order, error) {
				o.LineItems = order.LineItems
				o.Notes = order.Notes
				o.PaymentMethod = order.PaymentMethod
				o.RecalcTotal()
				return o, nil
			})
			if err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
			kds.BroadcastOrderUpdate(updated)
			oc.broadcastDerived()
			utils.RespondJSON(c, http.StatusOK, "Pedido "+updated.ID+" actualizado y enviado a cocina.", updated)
			return
		}
	}

	if err := oc.insertCheckingTable(order); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	kds.BroadcastOrderCreated(order)
	oc.broadcastDerived()
	utils.RespondJSON(c, http.StatusCreated, "Nuevo pedido "+order.ID+" creado y enviado a cocina.", order)
}

// UpdateOrderStatus applies a lifecycle transition. The acting role comes
// from the request (boards act as cook, driver or reception) and falls
// back to the token role.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status models.Status `json:"status" binding:"required"`
		Actor  models.Role   `json:"actor,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	actor := body.Actor
	if actor == "" {
		if role, ok := c.Get("role"); ok {
			actor = models.Role(role.(string))
		}
	}

	var notif *lifecycle.Notification
	updated, err := oc.Store.Update(c.Param("order_id"), func(o models.Order) (models.Order, error) {
		res, err := lifecycle.Transition(o, body.Status, actor, time.Now())
		if err != nil {
			return models.Order{}, err
		}
		notif = res.Notification
		return res.Order, nil
	})
	if err != nil {
		oc.respondLifecycleError(c, err)
		return
	}

	kds.BroadcastOrderUpdate(updated)
	if notif != nil {
		kds.BroadcastNotification(*notif)
	}
	oc.broadcastDerived()
	utils.RespondJSON(c, http.StatusOK, "Order status updated", updated)
}

// AssignCook sets or changes the assigned cook. Independent of status:
// no history entry, no notification.
func (oc *OrderController) AssignCook(c *gin.Context) {
	oc.assignStaff(c, func(o *models.Order, name string) { o.AssignedCook = name })
}

// AssignDriver sets or changes the assigned driver. Gates the en-route
// transition but is itself always allowed.
func (oc *OrderController) AssignDriver(c *gin.Context) {
	oc.assignStaff(c, func(o *models.Order, name string) { o.AssignedDriver = name })
}

func (oc *OrderController) assignStaff(c *gin.Context, set func(*models.Order, string)) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := oc.Store.Update(c.Param("order_id"), func(o models.Order) (models.Order, error) {
		set(&o, body.Name)
		return o, nil
	})
	if err != nil {
		oc.respondLifecycleError(c, err)
		return
	}

	kds.BroadcastOrderUpdate(updated)
	utils.RespondJSON(c, http.StatusOK, "Assignment updated", updated)
}

// insertCheckingTable commits a new order, rejecting a dine-in order for
// a table that already has an open order. The check runs inside the
// commit so no concurrent insert can slip between check and write.
func (oc *OrderController) insertCheckingTable(order models.Order) error {
	return oc.Store.Commit(func(orders []models.Order) ([]models.Order, error) {
		if order.Type == models.TypeDineIn && order.Customer.Table != nil {
			if _, taken := lifecycle.OpenOrderForTable(orders, *order.Customer.Table); taken {
				return nil, errors.New("table already has an open order")
			}
		}
		return append([]models.Order{order}, orders...), nil
	})
}

// broadcastDerived pushes the views that recompute from the collection
// after every change: table occupancy and dashboard metrics.
func (oc *OrderController) broadcastDerived() {
	now := time.Now()
	orders := oc.Store.Orders()
	kds.BroadcastTableUpdate(lifecycle.Tables(orders, catalog.DineInTables))
	kds.BroadcastDashboardUpdate(lifecycle.Summarize(orders, now))
}

func (oc *OrderController) respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, lifecycle.ErrSameStatus),
		errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrDriverRequired),
		errors.Is(err, lifecycle.ErrNotDelivery),
		errors.Is(err, lifecycle.ErrSettlementRequired),
		errors.Is(err, lifecycle.ErrInsufficientTender):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
