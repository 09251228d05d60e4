package entity

import "time"

// StoredOrder is one record in a user's order log. Everything except Status
// is immutable after creation; the items are snapshots taken at checkout.
type StoredOrder struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	TotalAmount     float64    `json:"totalAmount"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Phone           string     `json:"phone"`
	DeliveryMethod  string     `json:"deliveryMethod"`
	PaymentMethod   string     `json:"paymentMethod"`
	OrderDate       time.Time  `json:"orderDate"`
	Status          string     `json:"status"`
	Items           []CartItem `json:"items"`
}
