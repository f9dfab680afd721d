package services

import (
	"errors"
	"time"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"
	"github.com/Fryupi/magazin/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, ProductRepo: productRepo, UserRepo: userRepo}
}

type PlaceOrderIn struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
}

// Place converts one cart line into an order. The price snapshot, balance
// debit, stock decrement and cart line removal all happen in a single
// transaction with the cart line, product and buyer rows locked; a failed
// check leaves no trace.
func (s *OrderService) Place(buyerID, cartItemID uint) (*entity.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.FindForUpdate(tx, cartItemID, buyerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart item not found")
			}
			return err
		}

		product, err := s.ProductRepo.LockByID(tx, item.ProductID)
		if err != nil {
			return err
		}
		// stock may have dropped since the item was added
		if product.Stock < item.Quantity {
			return apperr.Newf(apperr.KindInsufficientStock,
				"not enough stock: %d available", product.Stock)
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		buyer, err := s.UserRepo.LockByID(tx, buyerID)
		if err != nil {
			return err
		}
		if buyer.Balance.LessThan(total) {
			return apperr.InsufficientFunds("insufficient balance")
		}

		order := entity.Order{
			OrderRef:   newOrderRef(),
			BuyerID:    buyerID,
			SellerID:   product.SellerID,
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			TotalPrice: total,
			Status:     entity.OrderStatusPending,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		if err := s.UserRepo.SetBalance(tx, buyerID, buyer.Balance.Sub(total)); err != nil {
			return err
		}
		if err := s.ProductRepo.SetStock(tx, product.ID, product.Stock-item.Quantity); err != nil {
			return err
		}
		if err := s.CartRepo.Delete(tx, item.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(orderID)
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// OrdersOut splits a dashboard listing into active orders and history.
// The split is presentation only; storage knows a single ordered list.
type OrdersOut struct {
	Active  []OrderOut `json:"active"`
	History []OrderOut `json:"history"`
}

// OrderOut carries the counterparty and product summaries list views embed.
type OrderOut struct {
	entity.Order
	Buyer   entity.UserSummary    `json:"buyer"`
	Seller  entity.UserSummary    `json:"seller"`
	Product entity.ProductSummary `json:"product"`
}

// ListForUser shows sellers their sales and buyers their purchases, most
// recent first.
func (s *OrderService) ListForUser(userID uint, role string) (*OrdersOut, error) {
	var (
		orders []entity.Order
		err    error
	)
	if role == entity.RoleSeller {
		orders, err = s.Repo.ListForSeller(userID)
	} else {
		orders, err = s.Repo.ListForBuyer(userID)
	}
	if err != nil {
		return nil, err
	}

	out := &OrdersOut{Active: []OrderOut{}, History: []OrderOut{}}
	for i := range orders {
		o := orderOut(&orders[i])
		if orders[i].InHistory() {
			out.History = append(out.History, o)
		} else {
			out.Active = append(out.Active, o)
		}
	}
	return out, nil
}

func (s *OrderService) Detail(orderID, userID uint) (*OrderOut, error) {
	order, err := s.find(orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != userID && order.SellerID != userID {
		return nil, apperr.Permission("access denied")
	}
	o := orderOut(order)
	return &o, nil
}

func (s *OrderService) find(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

func orderOut(o *entity.Order) OrderOut {
	return OrderOut{
		Order:   *o,
		Buyer:   o.Buyer.Summary(),
		Seller:  o.Seller.Summary(),
		Product: o.Product.Summary(),
	}
}
