package domain

import "time"

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
	OrderFailed  OrderStatus = "failed"
)

// Terminal reports whether the status accepts no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderFailed
}

// Address holds delivery details captured at checkout. All fields are
// required and validated for presence at the boundary.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// OrderItem is a frozen copy of a cart line taken at placement time. It is
// independent of later catalog changes.
type OrderItem struct {
	FoodID     string `json:"foodId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Order is an immutable purchase record. AmountCents is computed once at
// creation and never recomputed.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Address     Address     `json:"address"`
	Items       []OrderItem `json:"items"`
	AmountCents int64       `json:"amountCents"`
	Status      OrderStatus `json:"status"`
	SessionID   string      `json:"-"`
	CreatedAt   time.Time   `json:"createdAt"`
}
