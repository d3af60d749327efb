package models

// Table is a derived view of dine-in table occupancy. It is never
// persisted; it is recomputed from the order collection after every change.
type Table struct {
	Number      int    `json:"number"`
	Occupied    bool   `json:"occupied"`
	OpenOrderID string `json:"open_order_id,omitempty"`
}
