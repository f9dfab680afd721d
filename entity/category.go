package entity

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Deleting a category detaches its products, never removes them.
	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
