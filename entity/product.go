package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SellerID uint `gorm:"not null;index" json:"sellerId"`
	Seller   User `json:"-"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`

	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`

	// Mean of review ratings, 0 when there are none. Computed on read.
	AverageRating float64 `gorm:"-" json:"averageRating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type ProductSummary struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
	Seller UserSummary     `json:"seller"`
}

func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Seller: p.Seller.Summary(),
	}
}
