package services

import (
	"testing"
	"time"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db *gorm.DB

	auth    *AuthService
	users   *UserService
	catalog *CatalogService
	cart    *CartService
	orders  *OrderService
	reviews *ReviewService
	dash    *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// one connection: every session sees the same in-memory database, and
	// concurrent transactions serialize the way row locks would
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.Review{},
	))

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	return &testEnv{
		db:      db,
		auth:    NewAuthService(userRepo, "test-secret", time.Hour),
		users:   NewUserService(db, userRepo),
		catalog: NewCatalogService(db, productRepo, categoryRepo),
		cart:    NewCartService(db, cartRepo, productRepo),
		orders:  NewOrderService(db, orderRepo, cartRepo, productRepo, userRepo),
		reviews: NewReviewService(reviewRepo, productRepo),
		dash:    NewDashboardService(productRepo, orderRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, username, role string, balance int64) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
		Balance:  decimal.NewFromInt(balance),
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProduct(t *testing.T, sellerID uint, name string, price int64, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{
		SellerID: sellerID,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) reloadProduct(t *testing.T, id uint) *entity.Product {
	t.Helper()
	var product entity.Product
	require.NoError(t, e.db.First(&product, id).Error)
	return &product
}

func (e *testEnv) reloadUser(t *testing.T, id uint) *entity.User {
	t.Helper()
	var user entity.User
	require.NoError(t, e.db.First(&user, id).Error)
	return &user
}
