package repository

import (
	"github.com/Fryupi/magazin/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ListForProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

type ReviewAggregate struct {
	Avg   float64 `json:"avgRating"`
	Count int64   `json:"total"`
}

func (r *ReviewRepository) Aggregate(productID uint) (*ReviewAggregate, error) {
	var a ReviewAggregate
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
