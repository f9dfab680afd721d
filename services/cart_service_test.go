package services

import (
	"testing"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	item, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(20)))
}

func TestAddToCartMissingProduct(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)

	_, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: 42, Quantity: 1})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAddToCartOutOfStock(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 0)

	_, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	assert.Equal(t, apperr.KindOutOfStock, apperr.KindOf(err))
}

func TestAddToCartMerges(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	_, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	// 3 + 3 > 5: rejected, message names stock and cart quantity
	_, err = env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 3})
	require.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "5 available")
	assert.Contains(t, err.Error(), "3 already in cart")

	// 3 + 2 = 5: merged into one line
	item, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	items, err := env.cart.List(buyer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "same product never duplicates a line")
}

func TestCartTotalFollowsCurrentPrice(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	_, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Update("price", decimal.NewFromInt(25)).Error)

	items, err := env.cart.List(buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].TotalPrice.Equal(decimal.NewFromInt(50)),
		"line total reflects the current price, not price-at-add-time")
}

func TestUpdateQty(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	item, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = env.cart.UpdateQty(buyer.ID, item.ID, 6)
	assert.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))

	updated, err := env.cart.UpdateQty(buyer.ID, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	// zero removes the line
	removed, err := env.cart.UpdateQty(buyer.ID, item.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, removed)

	items, err := env.cart.List(buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveForeignItem(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	other := env.createUser(t, "other", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	item, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	err = env.cart.Remove(other.ID, item.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateQtyVanishedProduct(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "seller", entity.RoleSeller, 0)
	buyer := env.createUser(t, "buyer", entity.RoleBuyer, 0)
	product := env.createProduct(t, seller.ID, "Gadget", 10, 5)

	item, err := env.cart.Add(buyer.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	// product row gone while the cart line lingers
	require.NoError(t, env.db.Delete(&entity.Product{}, product.ID).Error)

	_, err = env.cart.UpdateQty(buyer.ID, item.ID, 2)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
