// Package kds is the display hub: every board (waiting, kitchen,
// delivery, pickup, cashier, dashboard) holds a websocket connection here
// and gets pushed the events it needs to rerender. Notifications are
// transient; nothing in this package is persisted.
package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lacomanda/comanda/lifecycle"
	"github.com/lacomanda/comanda/models"
	"github.com/lacomanda/comanda/utils"
)

// Event types
const (
	EventOrderUpdate          = "order_update"
	EventOrderCreated         = "order_created"
	EventTableUpdate          = "table_update"
	EventCustomerNotification = "customer_notification"
	EventStaffNotification    = "staff_notification"
	EventDashboardUpdate      = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds all connected board clients (role is informational only).
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated announces a freshly placed order to the boards.
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdate pushes an order's new state after a transition,
// assignment or settlement.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastTableUpdate pushes the rederived occupancy view.
func BroadcastTableUpdate(tables []models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: tables})
}

// BroadcastNotification pushes a lifecycle notification on the surface
// matching its audience.
func BroadcastNotification(n lifecycle.Notification) {
	event := EventCustomerNotification
	if n.Audience == lifecycle.AudienceStaff {
		event = EventStaffNotification
	}
	broadcast(Message{Event: event, Data: n})
}

// BroadcastDashboardUpdate pushes refreshed metrics.
func BroadcastDashboardUpdate(metrics lifecycle.Metrics) {
	broadcast(Message{Event: EventDashboardUpdate, Data: metrics})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("marshal hub message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("send to board client: %v", err)
		}
	}
}
