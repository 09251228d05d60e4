package routes

import (
	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/controllers"
	"github.com/nguyendat030805/FinalProjectMobile/middlewares"
	"github.com/nguyendat030805/FinalProjectMobile/repository"
	"github.com/nguyendat030805/FinalProjectMobile/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *configs.Database, orderRepo *repository.OrderRepository) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories / services
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	catalogSvc := services.NewCatalogService(catalogRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService()
	orderSvc := services.NewOrderService(orderRepo, cartSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(authSvc, db)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Storefront (public)
	r.GET("/categories", catalogCtrl.ListCategories)
	r.GET("/categories/:id/products", catalogCtrl.ProductsByCategory)
	r.GET("/products", catalogCtrl.ListProducts)
	r.GET("/products/search", catalogCtrl.Search)

	// Cart (logged in)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.PATCH("/:productId", cartCtrl.Update)
		cart.DELETE("/:productId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (logged in)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.List)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Back-office (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.PATCH("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)

		admin.POST("/products", catalogCtrl.CreateProduct)
		admin.PATCH("/products/:id", catalogCtrl.UpdateProduct)
		admin.DELETE("/products/:id", catalogCtrl.DeleteProduct)
		admin.POST("/categories", catalogCtrl.CreateCategory)
		admin.PATCH("/categories/:id", catalogCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)

		admin.POST("/reset", adminCtrl.Reset)
	}
}
