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

const maxStockTopUp = 10000

// CatalogService owns categories and products, including the seller-side
// stock top-up.
type CatalogService struct {
	DB           *gorm.DB
	ProductRepo  *repository.ProductRepository
	CategoryRepo *repository.CategoryRepository
}

func NewCatalogService(db *gorm.DB, pr *repository.ProductRepository, cr *repository.CategoryRepository) *CatalogService {
	return &CatalogService{DB: db, ProductRepo: pr, CategoryRepo: cr}
}

// ----- categories -----

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.CategoryRepo.List()
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	category := &entity.Category{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CatalogService) UpdateCategory(id uint, in *CategoryPatch) (*entity.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if err := s.CategoryRepo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return err
	}
	return s.CategoryRepo.Delete(id)
}

// ----- products -----

func (s *CatalogService) ListProducts(categoryID *uint, search string) ([]entity.Product, error) {
	products, err := s.ProductRepo.List(categoryID, search)
	if err != nil {
		return nil, err
	}
	if err := s.fillRatings(products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) GetProduct(id uint) (*entity.Product, error) {
	product, err := s.ProductRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}

	ratings, err := s.ProductRepo.AvgRatings([]uint{product.ID})
	if err != nil {
		return nil, err
	}
	product.AverageRating = ratings[product.ID]
	return product, nil
}

type CreateProductIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uint           `json:"categoryId"`
}

// CreateProduct takes the seller from the authenticated caller, never from
// the payload.
func (s *CatalogService) CreateProduct(sellerID uint, in *CreateProductIn) (*entity.Product, error) {
	if in.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}
	if in.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("category not found")
			}
			return nil, err
		}
	}

	product := &entity.Product{
		SellerID:    sellerID,
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if err := s.ProductRepo.Create(product); err != nil {
		return nil, err
	}
	return s.ProductRepo.FindByID(product.ID)
}

type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"categoryId"`
}

func (s *CatalogService) UpdateProduct(productID, sellerID uint, in *ProductPatch) (*entity.Product, error) {
	product, err := s.ownedProduct(productID, sellerID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.Validation("price must not be negative")
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("category not found")
			}
			return nil, err
		}
		product.CategoryID = in.CategoryID
	}

	if err := s.ProductRepo.Save(product); err != nil {
		return nil, err
	}
	return s.ProductRepo.FindByID(product.ID)
}

func (s *CatalogService) DeleteProduct(productID, sellerID uint) error {
	if _, err := s.ownedProduct(productID, sellerID); err != nil {
		return err
	}
	return s.ProductRepo.Delete(productID)
}

// AddStock increments stock atomically on the locked product row.
func (s *CatalogService) AddStock(productID, sellerID uint, amount int) (*entity.Product, error) {
	if _, err := s.ownedProduct(productID, sellerID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperr.Validation("amount must be positive")
	}
	if amount > maxStockTopUp {
		return nil, apperr.Validation("maximum stock top-up is 10,000")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		product, err := s.ProductRepo.LockByID(tx, productID)
		if err != nil {
			return err
		}
		return s.ProductRepo.SetStock(tx, productID, product.Stock+amount)
	})
	if err != nil {
		return nil, err
	}
	return s.ProductRepo.FindByID(productID)
}

func (s *CatalogService) ownedProduct(productID, sellerID uint) (*entity.Product, error) {
	product, err := s.ProductRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, apperr.Permission("not your product")
	}
	return product, nil
}

func (s *CatalogService) fillRatings(products []entity.Product) error {
	ids := make([]uint, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	ratings, err := s.ProductRepo.AvgRatings(ids)
	if err != nil {
		return err
	}
	for i := range products {
		products[i].AverageRating = ratings[products[i].ID]
	}
	return nil
}
