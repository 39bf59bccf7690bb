package domain

import "time"

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "Completed"
	OrderPending   OrderStatus = "Pending"
	OrderRefunded  OrderStatus = "Refunded"
)

// Order is an immutable record of a submitted purchase. Items and
// Total are frozen at submission time; later changes to the live cart
// never reach an already created order.
type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Items  []CartItem  `json:"items"`
	Total  int         `json:"total"`
	Status OrderStatus `json:"status"`
}
