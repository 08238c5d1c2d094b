// internal/models/order.go
package models

import "time"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is a customer purchase. The id and all monetary fields are computed
// by the caller before the order enters the store; the store only ever
// touches the two status fields and UpdatedAt.
type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Items         []CartItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Shipping      float64       `json:"shipping"`
	Total         float64       `json:"total"`
	ShippingAddr  Address       `json:"shipping_address"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status"`
	SellerID      string        `json:"seller_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Key returns the order id; satisfies store.Record.
func (o Order) Key() string { return o.ID }

// Clone deep-copies the item lines so callers can't alias store state.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]CartItem, len(o.Items))
		for i, it := range o.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}
