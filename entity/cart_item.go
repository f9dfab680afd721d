package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line. The pair is unique: adding the same
// product again merges quantity instead of creating a second row.
type CartItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Live value: current product price × quantity, never stored.
	TotalPrice decimal.Decimal `gorm:"-" json:"totalPrice"`

	CreatedAt time.Time `json:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
