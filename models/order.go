package models

import (
	"math"
	"time"
)

// Customer is the contact information attached to an order. Address is
// only meaningful for delivery orders, Table only for dine-in.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Table   *int   `json:"table,omitempty"`
}

// Addon is an extra (sauce, topping) attached to a line item, with its
// price snapshotted at order time.
type Addon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem is one catalog product on an order. Name and UnitPrice are
// snapshots taken from the catalog when the order was created; they are
// never recomputed, so historical orders keep the prices they were sold at.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Addons    []Addon `json:"addons,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// Subtotal returns (unit price + addon prices) x quantity, rounded to cents.
func (li LineItem) Subtotal() float64 {
	unit := li.UnitPrice
	for _, a := range li.Addons {
		unit += a.Price
	}
	return RoundCents(unit * float64(li.Quantity))
}

// HistoryEntry records one status change. The history is append-only:
// entries are never mutated or reordered.
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     Role      `json:"actor"`
}

// Settlement is the recorded outcome of collecting payment. Set exactly
// once, by the settlement flow, together with the transition to paid.
type Settlement struct {
	Method         PaymentMethod `json:"method"`
	TotalAmount    float64       `json:"total_amount"`
	AmountTendered float64       `json:"amount_tendered,omitempty"`
	ChangeDue      float64       `json:"change_due"`
	Timestamp      time.Time     `json:"timestamp"`
}

// Order is the central aggregate. Status, History and Settlement are only
// written through the lifecycle engine; everything downstream (boards,
// table occupancy, dashboard) derives from the order collection.
type Order struct {
	ID               string          `json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	Type             OrderType       `json:"type"`
	Status           Status          `json:"status"`
	Shift            Shift           `json:"shift"`
	Customer         Customer        `json:"customer"`
	LineItems        []LineItem      `json:"line_items"`
	Total            float64         `json:"total"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	CashTendered     float64         `json:"cash_tendered,omitempty"`
	ExactCash        bool            `json:"exact_cash,omitempty"`
	AssignedCook     string          `json:"assigned_cook,omitempty"`
	AssignedDriver   string          `json:"assigned_driver,omitempty"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	ElapsedSeconds   int             `json:"elapsed_seconds"`
	Notes            string          `json:"notes,omitempty"`
	History          []HistoryEntry  `json:"history"`
	PreparationArea  PreparationArea `json:"preparation_area"`
	Settlement       *Settlement     `json:"settlement,omitempty"`
}

// RecalcTotal recomputes Total from the line items. Called whenever line
// items change so the total always matches the sum to the cent.
func (o *Order) RecalcTotal() {
	var total float64
	for _, li := range o.LineItems {
		total += li.Subtotal()
	}
	o.Total = RoundCents(total)
}

// IsOpen reports whether the order is still in a non-terminal status.
func (o *Order) IsOpen() bool {
	return !o.Status.IsTerminal()
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing the history and line-item slices.
func (o Order) Clone() Order {
	c := o
	c.LineItems = make([]LineItem, len(o.LineItems))
	copy(c.LineItems, o.LineItems)
	for i, li := range o.LineItems {
		if len(li.Addons) > 0 {
			c.LineItems[i].Addons = make([]Addon, len(li.Addons))
			copy(c.LineItems[i].Addons, li.Addons)
		}
	}
	c.History = make([]HistoryEntry, len(o.History))
	copy(c.History, o.History)
	if o.Settlement != nil {
		s := *o.Settlement
		c.Settlement = &s
	}
	return c
}

// RoundCents rounds a monetary amount to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
