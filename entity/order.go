package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting seller
	OrderStatusAccepted   OrderStatus = "accepted"   // accepted by seller
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // arrived, waiting for buyer confirmation
	OrderStatusReceived   OrderStatus = "received"   // confirmed by buyer
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusReceived,
		OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a snapshot taken at placement time: quantity and total price do
// not follow later product price changes. Orders are never deleted, only
// transitioned.
type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex;not null" json:"orderRef"`

	BuyerID uint `gorm:"not null;index" json:"buyerId"`
	Buyer   User `json:"-"`

	SellerID uint `gorm:"not null;index" json:"sellerId"`
	Seller   User `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity   int             `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalPrice"`

	Status     OrderStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	IsReceived bool        `gorm:"not null;default:false" json:"isReceived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InHistory reports whether the order left the active lifecycle.
func (o *Order) InHistory() bool {
	return o.Status == OrderStatusReceived || o.Status == OrderStatusCancelled || o.IsReceived
}
