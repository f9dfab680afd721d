package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:buyer" json:"role"`

	Balance decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"balance"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations, preload only when needed
	Products  []Product  `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Summary is the nested representation embedded in product and order payloads.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Role: u.Role}
}
