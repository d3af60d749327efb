package models

// Status is the lifecycle state of an order. Transitions between statuses
// go through the lifecycle package; nothing else writes Order.Status.
type Status string

const (
	StatusPendingConfirmation Status = "pending-confirmation"
	StatusNew                 Status = "new"
	StatusConfirmed           Status = "confirmed"
	StatusPreparing           Status = "preparing"
	StatusAssembling          Status = "assembling"
	StatusReadyForAssembly    Status = "ready-for-assembly"
	StatusReady               Status = "ready"
	StatusEnRoute             Status = "en-route"
	StatusDelivered           Status = "delivered"
	StatusPickedUp            Status = "picked-up"
	StatusCanceled            Status = "canceled"
	StatusPaid                Status = "paid"
)

// IsTerminal reports whether the status closes the order. A dine-in table
// is considered free once its order reaches a terminal status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusPickedUp, StatusCanceled, StatusPaid:
		return true
	}
	return false
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPendingConfirmation, StatusNew, StatusConfirmed, StatusPreparing,
		StatusAssembling, StatusReadyForAssembly, StatusReady, StatusEnRoute,
		StatusDelivered, StatusPickedUp, StatusCanceled, StatusPaid:
		return true
	}
	return false
}

type OrderType string

const (
	TypeDineIn   OrderType = "dine-in"
	TypeDelivery OrderType = "delivery"
	TypePickup   OrderType = "pickup"
)

func (t OrderType) IsValid() bool {
	return t == TypeDineIn || t == TypeDelivery || t == TypePickup
}

// PreparationArea is the kitchen sub-queue an order's items are routed to.
// Fixed at creation from the order type.
type PreparationArea string

const (
	AreaDiningRoom PreparationArea = "dining-room"
	AreaDelivery   PreparationArea = "delivery"
	AreaPickup     PreparationArea = "pickup"
)

// AreaFor maps an order type to its preparation area.
func AreaFor(t OrderType) PreparationArea {
	switch t {
	case TypeDineIn:
		return AreaDiningRoom
	case TypePickup:
		return AreaPickup
	default:
		return AreaDelivery
	}
}

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftEvening
}

// Role identifies who triggered a lifecycle action. Stamped into history
// entries and carried in staff tokens.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCook      Role = "cook"
	RoleDriver    Role = "driver"
	RoleReception Role = "reception"
	RoleCustomer  Role = "customer"
)

type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayCard         PaymentMethod = "card"
	PayMobileWallet PaymentMethod = "mobile-wallet"
	PayOnline       PaymentMethod = "online"
)

func (m PaymentMethod) IsValid() bool {
	return m == PayCash || m == PayCard || m == PayMobileWallet || m == PayOnline
}
