package repository

import (
	"strings"

	"github.com/Fryupi/magazin/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// List applies the two independent catalog filters: category and
// case-insensitive substring search over name or description.
func (r *ProductRepository) List(categoryID *uint, search string) ([]entity.Product, error) {
	q := r.DB.Preload("Seller").Preload("Category")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var products []entity.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListBySeller(sellerID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Preload("Category").Where("seller_id = ?", sellerID).Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.DB.Preload("Seller").Preload("Category").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Save(product *entity.Product) error {
	return r.DB.Save(product).Error
}

// Delete removes the product's reviews with it.
func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&entity.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, id).Error
	})
}

// LockByID loads the product row FOR UPDATE inside tx.
func (r *ProductRepository) LockByID(tx *gorm.DB, id uint) (*entity.Product, error) {
	var product entity.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) SetStock(tx *gorm.DB, id uint, stock int) error {
	return tx.Model(&entity.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

// AvgRatings returns the mean review rating per product; products without
// reviews are simply absent from the map.
func (r *ProductRepository) AvgRatings(productIDs []uint) (map[uint]float64, error) {
	if len(productIDs) == 0 {
		return map[uint]float64{}, nil
	}

	rows := make([]struct {
		ProductID uint
		Avg       float64
	}, 0, len(productIDs))
	err := r.DB.Model(&entity.Review{}).
		Select("product_id, AVG(rating) AS avg").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]float64, len(rows))
	for _, row := range rows {
		out[row.ProductID] = row.Avg
	}
	return out, nil
}
