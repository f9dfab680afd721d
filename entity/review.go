package entity

import "time"

// Review is immutable once created; a user rates a given product at most once.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint    `gorm:"not null;uniqueIndex:idx_review_product_user" json:"productId"`
	Product   Product `json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_review_product_user" json:"userId"`
	User   User `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
