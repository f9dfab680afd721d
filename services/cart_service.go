package services

import (
	"errors"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"
	"github.com/Fryupi/magazin/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// Add creates or merges the (user, product) cart line. The stock check and
// the merge run in one transaction with the product row locked, so two
// concurrent adds cannot jointly exceed stock.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		product, err := s.ProductRepo.LockByID(tx, in.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("product not found")
			}
			return err
		}

		if product.Stock == 0 {
			return apperr.OutOfStock("product is out of stock")
		}
		if in.Quantity > product.Stock {
			return apperr.Newf(apperr.KindInsufficientStock,
				"not enough stock: %d available", product.Stock)
		}

		existing, err := s.CartRepo.FindByUserAndProduct(tx, userID, in.ProductID)
		if err == nil {
			merged := existing.Quantity + in.Quantity
			if merged > product.Stock {
				return apperr.Newf(apperr.KindInsufficientStock,
					"not enough stock: %d available, %d already in cart",
					product.Stock, existing.Quantity)
			}
			existing.Quantity = merged
			if err := s.CartRepo.Save(tx, existing); err != nil {
				return err
			}
			out = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := &entity.CartItem{UserID: userID, ProductID: in.ProductID, Quantity: in.Quantity}
		if err := s.CartRepo.Create(tx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.load(out.ID, userID)
}

// List returns the caller's cart with live totals.
func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TotalPrice = lineTotal(&items[i])
	}
	return items, nil
}

// UpdateQty sets the line quantity; zero or less removes the line.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) (*entity.CartItem, error) {
	if qty <= 0 {
		return nil, s.Remove(userID, itemID)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.FindForUpdate(tx, itemID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart item not found")
			}
			return err
		}

		product, err := s.ProductRepo.LockByID(tx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("product not found")
			}
			return err
		}
		if qty > product.Stock {
			return apperr.Newf(apperr.KindInsufficientStock,
				"not enough stock: %d available", product.Stock)
		}

		item.Quantity = qty
		return s.CartRepo.Save(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return s.load(itemID, userID)
}

func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.CartRepo.FindForUser(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item not found")
		}
		return err
	}
	return s.CartRepo.Delete(s.DB, item.ID)
}

func (s *CartService) load(itemID, userID uint) (*entity.CartItem, error) {
	item, err := s.CartRepo.FindForUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	item.TotalPrice = lineTotal(item)
	return item, nil
}

func lineTotal(item *entity.CartItem) decimal.Decimal {
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
