package repository

import (
	"github.com/Fryupi/magazin/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.Preload("Buyer").Preload("Seller").Preload("Product").Preload("Product.Seller").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListForBuyer(buyerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Buyer").Preload("Seller").Preload("Product").Preload("Product.Seller").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForSeller(sellerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Buyer").Preload("Seller").Preload("Product").Preload("Product.Seller").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateFields touches only the named columns, leaving the snapshot alone.
func (r *OrderRepository) UpdateFields(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// ----- seller dashboard aggregates -----

func (r *OrderRepository) CountForSeller(sellerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountActiveForSeller(sellerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("seller_id = ? AND status NOT IN ? AND is_received = ?",
			sellerID,
			[]entity.OrderStatus{entity.OrderStatusReceived, entity.OrderStatusCancelled},
			false).
		Count(&count).Error
	return count, err
}

// RevenueForSeller sums received orders only.
func (r *OrderRepository) RevenueForSeller(sellerID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("seller_id = ? AND status = ?", sellerID, entity.OrderStatusReceived).
		Scan(&total).Error
	return total, err
}

// PendingRevenueForSeller sums orders still in the active lifecycle.
func (r *OrderRepository) PendingRevenueForSeller(sellerID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("seller_id = ? AND status NOT IN ? AND is_received = ?",
			sellerID,
			[]entity.OrderStatus{entity.OrderStatusReceived, entity.OrderStatusCancelled},
			false).
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) StatusCountsForSeller(sellerID uint) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		Count  int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("seller_id = ?", sellerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

type ProductOrderCount struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Orders    int64  `gorm:"column:order_count" json:"orders"`
}

// PopularProductsForSeller ranks the seller's products by received orders.
func (r *OrderRepository) PopularProductsForSeller(sellerID uint, limit int) ([]ProductOrderCount, error) {
	var rows []ProductOrderCount
	err := r.DB.Model(&entity.Order{}).
		Select("orders.product_id, products.name, COUNT(*) AS order_count").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.seller_id = ? AND orders.status = ?", sellerID, entity.OrderStatusReceived).
		Group("orders.product_id, products.name").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
