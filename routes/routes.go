package routes

import (
	"github.com/Fryupi/magazin/configs"
	"github.com/Fryupi/magazin/controllers"
	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/middlewares"
	"github.com/Fryupi/magazin/repository"
	"github.com/Fryupi/magazin/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(db, userRepo)
	catalogSvc := services.NewCatalogService(db, productRepo, categoryRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, userRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	dashSvc := services.NewDashboardService(productRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	sellerCtrl := controllers.NewSellerController(dashSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	sellerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSeller)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", authed)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/balance", authCtrl.AddBalance)
	}

	// Catalog (public reads)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/products/:id/reviews", reviewCtrl.ListForProduct)

	// Catalog (seller writes)
	sellerCatalog := r.Group("/", sellerOnly)
	{
		sellerCatalog.POST("/categories", categoryCtrl.Create)
		sellerCatalog.PATCH("/categories/:id", categoryCtrl.Update)
		sellerCatalog.DELETE("/categories/:id", categoryCtrl.Delete)
		sellerCatalog.POST("/products", productCtrl.Create)
		sellerCatalog.PATCH("/products/:id", productCtrl.Update)
		sellerCatalog.DELETE("/products/:id", productCtrl.Delete)
		sellerCatalog.POST("/products/:id/stock", productCtrl.AddStock)
	}

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.PATCH("/:id", cartCtrl.UpdateQty)
		cart.DELETE("/:id", cartCtrl.Remove)
	}

	// Orders
	orders := r.Group("/orders", authed)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.POST("/:id/received", orderCtrl.ConfirmReceived)
	}

	// Reviews
	r.POST("/products/:id/reviews", authed, reviewCtrl.Create)

	// Seller dashboard
	r.GET("/seller/dashboard", sellerOnly, sellerCtrl.Dashboard)
}
