package services

import (
	"testing"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)

	_, err := env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Gadget", Price: decimal.NewFromInt(-1),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Gadget", Price: decimal.NewFromInt(10), Stock: -3,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	product, err := env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Gadget", Price: decimal.NewFromInt(10), Stock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, product.SellerID, "seller comes from the caller identity")
}

func TestListProductsFilters(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)

	books, err := env.catalog.CreateCategory(&CategoryIn{Name: "Books"})
	require.NoError(t, err)

	_, err = env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Go Programming", Description: "a language book",
		Price: decimal.NewFromInt(30), Stock: 5, CategoryID: &books.ID,
	})
	require.NoError(t, err)
	_, err = env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Coffee Mug", Description: "ceramic",
		Price: decimal.NewFromInt(8), Stock: 5,
	})
	require.NoError(t, err)

	all, err := env.catalog.ListProducts(nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inBooks, err := env.catalog.ListProducts(&books.ID, "")
	require.NoError(t, err)
	require.Len(t, inBooks, 1)
	assert.Equal(t, "Go Programming", inBooks[0].Name)

	// case-insensitive, matches description too
	byText, err := env.catalog.ListProducts(nil, "CERAMIC")
	require.NoError(t, err)
	require.Len(t, byText, 1)
	assert.Equal(t, "Coffee Mug", byText[0].Name)

	// both filters compose
	both, err := env.catalog.ListProducts(&books.ID, "mug")
	require.NoError(t, err)
	assert.Empty(t, both)
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	books, err := env.catalog.CreateCategory(&CategoryIn{Name: "Books"})
	require.NoError(t, err)
	product, err := env.catalog.CreateProduct(seller.ID, &CreateProductIn{
		Name: "Novel", Price: decimal.NewFromInt(12), Stock: 1, CategoryID: &books.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.catalog.DeleteCategory(books.ID))

	reloaded := env.reloadProduct(t, product.ID)
	assert.Nil(t, reloaded.CategoryID, "product survives with category detached")
}

func TestAddStock(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	other := env.createUser(t, "other", entity.RoleSeller, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 2)

	_, err := env.catalog.AddStock(product.ID, other.ID, 5)
	assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))

	_, err = env.catalog.AddStock(product.ID, seller.ID, 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = env.catalog.AddStock(product.ID, seller.ID, 10001)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	updated, err := env.catalog.AddStock(product.ID, seller.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)
}

func TestUpdateProductPermission(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	other := env.createUser(t, "other", entity.RoleSeller, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 2)

	newPrice := decimal.NewFromInt(15)
	_, err := env.catalog.UpdateProduct(product.ID, other.ID, &ProductPatch{Price: &newPrice})
	assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))

	updated, err := env.catalog.UpdateProduct(product.ID, seller.ID, &ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
}

func TestDeleteProductRemovesReviews(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 2)

	_, err := env.reviews.Create(buyer.ID, product.ID, &CreateReviewIn{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, env.catalog.DeleteProduct(product.ID, seller.ID))

	var count int64
	require.NoError(t, env.db.Model(&entity.Review{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Zero(t, count)
}
