package models

// Notification events broadcast to connected staff clients over the
// websocket hub when the order/table state changes.
const (
	EventOrderSubmitted = "orderSubmitted"
	EventOrderCancelled = "orderCancelled"
	EventTableChanged   = "tableChanged"
)

type Notification struct {
	Event    string      `json:"event"`
	Table_id string      `json:"table_id"`
	Order_id string      `json:"order_id,omitempty"`
	Payload  interface{} `json:"payload,omitempty"`
}
