package routes

import (
	"github.com/Saaaaaad3/Plattera/configs"
	"github.com/Saaaaaad3/Plattera/controllers"
	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/middlewares"
	"github.com/Saaaaaad3/Plattera/repository"
	"github.com/Saaaaaad3/Plattera/services"
	"github.com/Saaaaaad3/Plattera/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)

	// Services
	store := services.NewMenuStore(menuRepo, menuRepo, cfg.StoreLatency)
	auth := services.NewAuthService(userRepo, otpRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.OTPTTL, cfg.OTPLength)

	// Live menu events
	hub := ws.NewMenuHub()
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(auth)
	restCtrl := controllers.NewRestaurantController(restRepo)
	menuCtrl := controllers.NewMenuController(store, restRepo, hub)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/verify", authCtrl.Verify)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public menu browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/items", menuCtrl.ListItems)
	r.GET("/restaurants/:id/items/:itemId", menuCtrl.ItemDetail)
	r.GET("/restaurants/:id/categories", menuCtrl.ListCategories)
	r.GET("/restaurants/:id/categories/:category/items", menuCtrl.CategoryPage)

	// Live menu updates
	r.GET("/ws/restaurants/:id/menu", hub.HandleWebSocket)

	// Owner menu management
	owner := r.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleRestOwner))
	{
		owner.GET("/restaurants", restCtrl.Mine)
		owner.POST("/restaurants/:id/items", menuCtrl.CreateItem)
		owner.PUT("/restaurants/:id/items/:itemId", menuCtrl.UpdateItem)
		owner.DELETE("/restaurants/:id/items/:itemId", menuCtrl.DeleteItem)
	}
}
