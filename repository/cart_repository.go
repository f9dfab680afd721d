package repository

import (
	"github.com/Fryupi/magazin/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Preload("Product").Preload("Product.Seller").
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

func (r *CartRepository) FindForUser(itemID, userID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindForUpdate loads an owned cart line FOR UPDATE inside tx. A concurrent
// transaction that consumed the line sees ErrRecordNotFound here.
func (r *CartRepository) FindForUpdate(tx *gorm.DB, itemID, userID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindByUserAndProduct(tx *gorm.DB, userID, productID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) Save(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}
