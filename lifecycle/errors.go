package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSameStatus rejects no-op transitions so the history never records
	// two consecutive entries with the same status.
	ErrSameStatus = errors.New("order is already in that status")

	// ErrUnknownStatus rejects targets outside the status domain.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrDriverRequired rejects en-route on a delivery order with no
	// assigned driver. This is the one hard precondition in the engine.
	ErrDriverRequired = errors.New("a driver must be assigned before the order can go en-route")

	// ErrNotDelivery rejects en-route on dine-in and pickup orders.
	ErrNotDelivery = errors.New("only delivery orders can go en-route")

	// ErrSettlementRequired rejects a bare status change to paid; paid is
	// only reachable through the settlement flow so that a settlement
	// record exists exactly when the status is paid.
	ErrSettlementRequired = errors.New("paid status is set by the settlement flow")

	// ErrInsufficientTender rejects a cash settlement where the amount
	// tendered does not cover the total.
	ErrInsufficientTender = errors.New("cash tendered is less than the order total")
)

// FieldError is a single order-creation validation failure, addressed to
// the form field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all creation failures so the caller can show
// them at once. The order is never created when any are present.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid order: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
