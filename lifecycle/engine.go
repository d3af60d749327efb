// Package lifecycle holds the order state machine: status transitions,
// the notification texts they produce, payment settlement and the derived
// projections (table occupancy, elapsed time). Everything here is pure --
// functions take order values and a clock reading and return new values,
// so the whole engine is testable without a store or an HTTP layer.
package lifecycle

import (
	"time"

	"github.com/lacomanda/comanda/models"
)

// Result is the outcome of an accepted transition: the updated order (new
// status, history appended) plus the notification the change produced, if
// any. The caller commits the order and emits the notification together.
type Result struct {
	Order        models.Order
	Notification *Notification
}

// Transition applies a status change to a copy of the order and returns it.
// The engine is deliberately permissive: the boards let staff drag a card
// to almost any column, so apart from the guards below any non-terminal
// jump is accepted rather than enforcing a strict graph.
//
// Guards:
//   - the target must be a known status
//   - moving to the current status is rejected (history stays clean)
//   - en-route requires a delivery order with a driver assigned
//   - paid is rejected here; it is only reachable through Settle
func Transition(order models.Order, target models.Status, actor models.Role, now time.Time) (Result, error) {
	if !target.IsValid() {
		return Result{}, ErrUnknownStatus
	}
	if order.Status == target {
		return Result{}, ErrSameStatus
	}
	switch target {
	case models.StatusPaid:
		return Result{}, ErrSettlementRequired
	case models.StatusEnRoute:
		if order.Type != models.TypeDelivery {
			return Result{}, ErrNotDelivery
		}
		if order.AssignedDriver == "" {
			return Result{}, ErrDriverRequired
		}
	}
	return apply(order, target, actor, now), nil
}

// apply mutates a clone: status, one history entry, notification. Shared
// by Transition and Settle so the bookkeeping cannot diverge.
func apply(order models.Order, target models.Status, actor models.Role, now time.Time) Result {
	updated := order.Clone()
	updated.Status = target
	updated.History = append(updated.History, models.HistoryEntry{
		Status:    target,
		Timestamp: now,
		Actor:     actor,
	})
	return Result{Order: updated, Notification: NotificationFor(updated)}
}

// Settle records payment for the order: computes change due, attaches the
// settlement record and moves the order to paid in one step. For a dine-in
// order reaching paid the table frees itself on the next occupancy
// derivation; no explicit release is needed.
func Settle(order models.Order, method models.PaymentMethod, amountTendered float64, actor models.Role, now time.Time) (Result, error) {
	if order.Status == models.StatusPaid {
		return Result{}, ErrSameStatus
	}
	var change float64
	settlement := models.Settlement{
		Method:      method,
		TotalAmount: order.Total,
		Timestamp:   now,
	}
	if method == models.PayCash {
		if amountTendered < order.Total {
			return Result{}, ErrInsufficientTender
		}
		change = models.RoundCents(amountTendered - order.Total)
		settlement.AmountTendered = amountTendered
	}
	settlement.ChangeDue = change

	res := apply(order, models.StatusPaid, actor, now)
	res.Order.Settlement = &settlement
	return res, nil
}

// Elapsed is the derived age of an order in whole seconds. It is a pure
// projection over (now, createdAt): recomputing it at any moment gives the
// right value, so the ticking clock can never drift.
func Elapsed(order models.Order, now time.Time) int {
	d := now.Sub(order.CreatedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// Project returns a copy of the collection with ElapsedSeconds refreshed
// against now. Called by the clock monitor once a second and by read paths
// that want current ages.
func Project(orders []models.Order, now time.Time) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		o.ElapsedSeconds = Elapsed(o, now)
		out[i] = o
	}
	return out
}
