package lifecycle

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lacomanda/comanda/models"
)

// Catalog resolves product ids and sauce names into price-snapshotted
// values at order-creation time. Implemented by the catalog package.
type Catalog interface {
	Product(id string) (models.Product, bool)
	Sauce(name string) (models.Addon, bool)
}

// DraftItem is one requested line on a new order, by catalog reference.
type DraftItem struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Sauces    []string `json:"sauces,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// Draft is everything a caller supplies to create an order. Shift, id,
// timestamps, prices, area and initial status are filled in by NewOrder.
type Draft struct {
	Type          models.OrderType     `json:"type"`
	Customer      models.Customer      `json:"customer"`
	Items         []DraftItem          `json:"items"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CashTendered  float64              `json:"cash_tendered,omitempty"`
	ExactCash     bool                 `json:"exact_cash,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

var phonePattern = regexp.MustCompile(`^\d{9}$`)

const (
	estimateDeliveryMinutes = 30
	estimateDefaultMinutes  = 15
)

// NewOrder validates the draft, snapshots prices from the catalog and
// builds the order. The initial status follows the no-show risk policy:
// a pickup order paying cash or card (payment not yet captured) starts at
// pending-confirmation, everything else starts at new. The first history
// entry is seeded with the initial status.
func NewOrder(draft Draft, cat Catalog, shift models.Shift, actor models.Role, now time.Time) (models.Order, error) {
	return build(draft, cat, shift, actor, now, initialStatus(draft.Type, draft.PaymentMethod), true)
}

// NewStaffOrder creates an order from the point-of-sale flow. It enters
// the queue already confirmed (staff took it, it goes straight to the
// kitchen) and skips the phone requirement for walk-in dine-in guests.
func NewStaffOrder(draft Draft, cat Catalog, shift models.Shift, now time.Time) (models.Order, error) {
	requirePhone := draft.Type != models.TypeDineIn
	return build(draft, cat, shift, models.RoleAdmin, now, models.StatusConfirmed, requirePhone)
}

func build(draft Draft, cat Catalog, shift models.Shift, actor models.Role, now time.Time, status models.Status, requirePhone bool) (models.Order, error) {
	verr := &ValidationError{}

	if !draft.Type.IsValid() {
		verr.add("type", "order type must be dine-in, delivery or pickup")
	}
	if !draft.PaymentMethod.IsValid() {
		verr.add("payment_method", "unknown payment method")
	}
	if strings.TrimSpace(draft.Customer.Name) == "" {
		verr.add("customer.name", "name is required")
	}
	if strings.TrimSpace(draft.Customer.Phone) == "" {
		if requirePhone {
			verr.add("customer.phone", "phone is required")
		}
	} else if !phonePattern.MatchString(draft.Customer.Phone) {
		verr.add("customer.phone", "phone must be 9 digits")
	}
	if draft.Type == models.TypeDelivery && strings.TrimSpace(draft.Customer.Address) == "" {
		verr.add("customer.address", "address is required for delivery")
	}
	if draft.Type == models.TypeDineIn && draft.Customer.Table == nil {
		verr.add("customer.table", "table number is required for dine-in")
	}
	if len(draft.Items) == 0 {
		verr.add("items", "order must have at least one item")
	}

	items := make([]models.LineItem, 0, len(draft.Items))
	for i, di := range draft.Items {
		if di.Quantity < 1 {
			verr.add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
			continue
		}
		product, ok := cat.Product(di.ProductID)
		if !ok {
			verr.add(fmt.Sprintf("items[%d].product_id", i), "unknown product")
			continue
		}
		item := models.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  di.Quantity,
			UnitPrice: product.Price,
			Notes:     di.Notes,
		}
		for _, name := range di.Sauces {
			sauce, ok := cat.Sauce(name)
			if !ok {
				verr.add(fmt.Sprintf("items[%d].sauces", i), fmt.Sprintf("unknown sauce %q", name))
				continue
			}
			item.Addons = append(item.Addons, sauce)
		}
		items = append(items, item)
	}

	order := models.Order{
		ID:               newOrderID(),
		CreatedAt:        now,
		Type:             draft.Type,
		Shift:            shift,
		Customer:         draft.Customer,
		LineItems:        items,
		PaymentMethod:    draft.PaymentMethod,
		Notes:            draft.Notes,
		EstimatedMinutes: estimateDefaultMinutes,
		PreparationArea:  models.AreaFor(draft.Type),
	}
	if draft.Type == models.TypeDelivery {
		order.EstimatedMinutes = estimateDeliveryMinutes
	}
	order.RecalcTotal()

	// Delivery paying cash declares the bill it will hand the driver, so
	// the driver carries the right change. Exact-cash skips the check.
	if draft.Type == models.TypeDelivery && draft.PaymentMethod == models.PayCash {
		if draft.ExactCash {
			order.ExactCash = true
		} else if draft.CashTendered <= 0 {
			verr.add("cash_tendered", "declare how much cash you will pay with")
		} else if draft.CashTendered < order.Total {
			verr.add("cash_tendered", "cash declared must cover the order total")
		} else {
			order.CashTendered = draft.CashTendered
		}
	}

	if err := verr.orNil(); err != nil {
		return models.Order{}, err
	}

	order.Status = status
	order.History = []models.HistoryEntry{{
		Status:    order.Status,
		Timestamp: now,
		Actor:     actor,
	}}
	return order, nil
}

// initialStatus applies the no-show risk policy: pickup orders whose
// payment is not captured up front (cash or card at the counter) wait for
// staff confirmation before entering the queue.
func initialStatus(t models.OrderType, m models.PaymentMethod) models.Status {
	if t == models.TypePickup && (m == models.PayCash || m == models.PayCard) {
		return models.StatusPendingConfirmation
	}
	return models.StatusNew
}

func newOrderID() string {
	return "PED-" + strings.ToUpper(uuid.NewString()[:8])
}

// ShiftAt maps a wall-clock time to the shift orders are filed under:
// morning before 12:00, afternoon before 18:00, evening after.
func ShiftAt(now time.Time) models.Shift {
	switch h := now.Hour(); {
	case h < 12:
		return models.ShiftMorning
	case h < 18:
		return models.ShiftAfternoon
	default:
		return models.ShiftEvening
	}
}
