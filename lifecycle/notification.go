package lifecycle

import (
	"fmt"

	"github.com/lacomanda/comanda/models"
)

// Audience says who a notification is for: customers get order progress,
// staff get cashier events (table freed, order paid).
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceStaff    Audience = "staff"
)

// Notification is a transient human-readable message produced by a status
// change. Nothing is persisted; the hub shows it and forgets it.
type Notification struct {
	Audience Audience `json:"audience"`
	Message  string   `json:"message"`
}

// NotificationFor returns the message a just-transitioned order produces,
// or nil for statuses with no customer-facing text (pending-confirmation,
// new, assembling, ready-for-assembly, canceled). The ready message is
// phrased per order type; paid is staff-facing.
func NotificationFor(order models.Order) *Notification {
	c := order.Customer
	var msg string
	switch order.Status {
	case models.StatusConfirmed:
		msg = fmt.Sprintf("Notificación enviada a %s: \"Tu pedido %s ha sido confirmado.\"", c.Name, order.ID)
	case models.StatusPreparing:
		msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s ya se está preparando!\"", c.Name, order.ID)
	case models.StatusReady:
		switch order.Type {
		case models.TypeDelivery:
			msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s está listo para ser enviado!\"", c.Name, order.ID)
		case models.TypePickup:
			msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s está listo para que lo recojas!\"", c.Name, order.ID)
		default:
			msg = fmt.Sprintf("Notificación para %s (Mesa %s): \"¡Tu pedido %s está listo!\"", c.Name, tableLabel(c.Table), order.ID)
		}
	case models.StatusEnRoute:
		msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s va en camino!\"", c.Name, order.ID)
	case models.StatusDelivered:
		msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s ha sido entregado! ¡Buen provecho!\"", c.Name, order.ID)
	case models.StatusPickedUp:
		msg = fmt.Sprintf("Notificación enviada a %s: \"¡Tu pedido %s ha sido recogido! Gracias.\"", c.Name, order.ID)
	case models.StatusPaid:
		if order.Type == models.TypeDineIn {
			return &Notification{Audience: AudienceStaff, Message: fmt.Sprintf("Mesa %s pagada y liberada.", tableLabel(c.Table))}
		}
		return &Notification{Audience: AudienceStaff, Message: fmt.Sprintf("Pedido %s pagado.", order.ID)}
	default:
		return nil
	}
	return &Notification{Audience: AudienceCustomer, Message: msg}
}

func tableLabel(table *int) string {
	if table == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *table)
}
