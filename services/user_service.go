package services

import (
	"errors"
	"strings"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"
	"github.com/Fryupi/magazin/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxTopUp = decimal.NewFromInt(1_000_000)

type UserService struct {
	DB       *gorm.DB
	userRepo *repository.UserRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository) *UserService {
	return &UserService{DB: db, userRepo: repo}
}

func (s *UserService) Profile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	return user, err
}

// UpdateProfileIn applies only the fields the caller provided.
type UpdateProfileIn struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (s *UserService) UpdateProfile(userID uint, in *UpdateProfileIn) (*entity.User, error) {
	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		count, err := s.userRepo.CountByEmailExcept(email, userID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.Conflict("email already registered")
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := s.userRepo.Updates(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Profile(userID)
}

// AddBalance tops up the caller's balance. The amount cap matches the UI's
// single top-up limit.
func (s *UserService) AddBalance(userID uint, amount decimal.Decimal) (*entity.User, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("amount must be positive")
	}
	if amount.GreaterThan(maxTopUp) {
		return nil, apperr.Validation("maximum top-up amount is 1,000,000")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.LockByID(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user not found")
			}
			return err
		}
		return s.userRepo.SetBalance(tx, userID, user.Balance.Add(amount))
	})
	if err != nil {
		return nil, err
	}
	return s.Profile(userID)
}
