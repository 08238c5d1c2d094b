// internal/models/notification.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationOrderUpdate NotificationKind = "order_update"
	NotificationPriceDrop   NotificationKind = "price_drop"
	NotificationReward      NotificationKind = "reward"
	NotificationSecurity    NotificationKind = "security"
	NotificationWishlist    NotificationKind = "wishlist"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationOrderUpdate, NotificationPriceDrop, NotificationReward,
		NotificationSecurity, NotificationWishlist:
		return true
	}
	return false
}

// Per-kind payloads. Exactly one of the payload pointers on Notification is
// set, matching Kind; consumers switch on Kind rather than probing fields.
type OrderUpdatePayload struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

type PriceDropPayload struct {
	ProductID string  `json:"product_id"`
	OldPrice  float64 `json:"old_price"`
	NewPrice  float64 `json:"new_price"`
}

type RewardPayload struct {
	Points int    `json:"points"`
	Reason string `json:"reason,omitempty"`
}

type SecurityPayload struct {
	Event string `json:"event"`
}

type WishlistPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Added       bool   `json:"added"`
}

// Notification is a closed tagged variant: the Kind discriminates which
// payload is populated.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`

	OrderUpdate *OrderUpdatePayload `json:"order_update,omitempty"`
	PriceDrop   *PriceDropPayload   `json:"price_drop,omitempty"`
	Reward      *RewardPayload      `json:"reward,omitempty"`
	Security    *SecurityPayload    `json:"security,omitempty"`
	Wishlist    *WishlistPayload    `json:"wishlist,omitempty"`
}

func newNotification(kind NotificationKind, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func NewOrderUpdateNotification(orderID string, status OrderStatus, message string) Notification {
	n := newNotification(NotificationOrderUpdate, message)
	n.OrderUpdate = &OrderUpdatePayload{OrderID: orderID, Status: status}
	return n
}

func NewPriceDropNotification(productID string, oldPrice, newPrice float64, message string) Notification {
	n := newNotification(NotificationPriceDrop, message)
	n.PriceDrop = &PriceDropPayload{ProductID: productID, OldPrice: oldPrice, NewPrice: newPrice}
	return n
}

func NewRewardNotification(points int, reason, message string) Notification {
	n := newNotification(NotificationReward, message)
	n.Reward = &RewardPayload{Points: points, Reason: reason}
	return n
}

func NewSecurityNotification(event, message string) Notification {
	n := newNotification(NotificationSecurity, message)
	n.Security = &SecurityPayload{Event: event}
	return n
}

func NewWishlistNotification(productID, productName string, added bool, message string) Notification {
	n := newNotification(NotificationWishlist, message)
	n.Wishlist = &WishlistPayload{ProductID: productID, ProductName: productName, Added: added}
	return n
}
