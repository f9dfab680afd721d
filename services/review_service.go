package services

import (
	"errors"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"
	"github.com/Fryupi/magazin/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	ProductRepo *repository.ProductRepository
}

func NewReviewService(rr *repository.ReviewRepository, pr *repository.ProductRepository) *ReviewService {
	return &ReviewService{Repo: rr, ProductRepo: pr}
}

type CreateReviewIn struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (s *ReviewService) Create(userID, productID uint, in *CreateReviewIn) (*entity.Review, error) {
	if _, err := s.ProductRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	review := &entity.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	// the (product, user) unique index is the source of truth, so two
	// concurrent submissions cannot both land
	if err := s.Repo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("already reviewed")
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForProduct(productID uint) ([]entity.Review, *repository.ReviewAggregate, error) {
	if _, err := s.ProductRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("product not found")
		}
		return nil, nil, err
	}

	reviews, err := s.Repo.ListForProduct(productID)
	if err != nil {
		return nil, nil, err
	}
	agg, err := s.Repo.Aggregate(productID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, agg, nil
}
