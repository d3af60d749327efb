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

type PaymentController struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewPaymentController(st *store.Store, cat *catalog.Catalog) *PaymentController {
	return &PaymentController{Store: st, Catalog: cat}
}

// SettleOrder records payment for an order: computes change due for cash,
// attaches the settlement record, moves the order to paid in one commit
// and notifies. This is the only path to the paid status. A dine-in table
// frees itself through the occupancy derivation pushed afterwards.
func (pc *PaymentController) SettleOrder(c *gin.Context) {
	var body struct {
		Method         models.PaymentMethod `json:"method" binding:"required"`
		AmountTendered float64              `json:"amount_tendered,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !body.Method.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown payment method"))
		return
	}

	var notif *lifecycle.Notification
	updated, err := pc.Store.Update(c.Param("order_id"), func(o models.Order) (models.Order, error) {
		res, err := lifecycle.Settle(o, body.Method, body.AmountTendered, models.RoleAdmin, time.Now())
		if err != nil {
			return models.Order{}, err
		}
		notif = res.Notification
		return res.Order, nil
	})
	if err != nil {
		respondSettleError(c, err)
		return
	}

	kds.BroadcastOrderUpdate(updated)
	if notif != nil {
		kds.BroadcastNotification(*notif)
	}
	now := time.Now()
	orders := pc.Store.Orders()
	kds.BroadcastTableUpdate(lifecycle.Tables(orders, catalog.DineInTables))
	kds.BroadcastDashboardUpdate(lifecycle.Summarize(orders, now))

	utils.RespondJSON(c, http.StatusOK, "Payment recorded", updated)
}

// GetPreBill returns the data the pre-bill (cuenta) slip is printed from:
// the order with its line items, total and formatted amount. Read-only;
// generating a pre-bill changes nothing.
func (pc *PaymentController) GetPreBill(c *gin.Context) {
	order, ok := pc.Store.Get(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, store.ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pre-bill", gin.H{
		"order":           order,
		"formatted_total": utils.FormatCurrency(order.Total),
	})
}

func respondSettleError(c *gin.Context, err error) {
	switch err {
	case store.ErrNotFound:
		utils.RespondError(c, http.StatusNotFound, err)
	case lifecycle.ErrInsufficientTender, lifecycle.ErrSameStatus:
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
