package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/infrastructure/auth"
	"github.com/marketplace/backend/internal/infrastructure/config"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/marketplace/backend/internal/interfaces/http/handler"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
)

// Dependencies holds everything the router needs to register routes
type Dependencies struct {
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Revocation auth.TokenRevocationStore
	HTTPConfig config.HTTPConfig
	Telemetry  config.TelemetryConfig

	System  *handler.SystemHandler
	Auth    *handler.AuthHandler
	Listing *handler.ListingHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Account *handler.AccountHandler
	Admin   *handler.AdminHandler
}

// Setup builds the gin engine with all middleware and routes registered
func Setup(deps Dependencies) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: deps.Telemetry.ServiceName,
		Enabled:     deps.Telemetry.Enabled,
	}))
	engine.Use(middleware.TraceAttributes())
	engine.Use(middleware.HTTPMetrics(deps.Telemetry.Enabled))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.CORSWithConfig(middleware.CORSFromConfig(deps.HTTPConfig)))

	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: deps.JWTService,
		Revocation: deps.Revocation,
		Logger:     deps.Logger,
	})

	api := engine.Group("/api/v1")

	// System endpoints are unauthenticated
	api.GET("/health", deps.System.Health)
	api.GET("/ready", deps.System.Ready)
	api.GET("/system/info", deps.System.GetSystemInfo)
	api.GET("/system/ping", deps.System.Ping)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.POST("/refresh", deps.Auth.Refresh)
		authGroup.POST("/logout", requireAuth, deps.Auth.Logout)
	}

	// Browsing the catalog requires no account
	listings := api.Group("/listings")
	{
		listings.GET("", deps.Listing.List)
		listings.GET("/featured", deps.Listing.Featured)
		listings.GET("/categories", deps.Listing.Categories)
		listings.GET("/:id", deps.Listing.GetByID)

		listings.POST("", requireAuth, deps.Listing.Create)
		listings.PUT("/:id", requireAuth, deps.Listing.Update)
		listings.DELETE("/:id", requireAuth, deps.Listing.Delete)
	}

	cart := api.Group("/cart", requireAuth)
	{
		cart.GET("", deps.Cart.Get)
		cart.POST("", deps.Cart.AddItem)
		cart.DELETE("", deps.Cart.Clear)
		cart.PUT("/items/:itemId", deps.Cart.UpdateItem)
		cart.DELETE("/items/:itemId", deps.Cart.RemoveItem)
	}

	orders := api.Group("/orders", requireAuth)
	{
		orders.POST("", deps.Order.Checkout)
		orders.GET("/purchases", deps.Order.ListPurchases)
		orders.GET("/sales", deps.Order.ListSales)
		orders.GET("/:id", deps.Order.GetByID)
		orders.PUT("/:id/status", deps.Order.UpdateStatus)
	}

	account := api.Group("/account", requireAuth)
	{
		account.GET("/profile", deps.Account.GetProfile)
		account.PUT("/profile", deps.Account.UpdateProfile)
		account.PUT("/email", deps.Account.ChangeEmail)
		account.PUT("/password", deps.Account.ChangePassword)
		account.GET("/listings", deps.Listing.ListMine)
	}

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	{
		admin.GET("/stats", deps.Admin.Stats)

		admin.GET("/users", deps.Admin.ListUsers)
		admin.POST("/users", deps.Admin.CreateUser)
		admin.GET("/users/:id", deps.Admin.GetUser)
		admin.PUT("/users/:id/status", deps.Admin.SetUserStatus)
		admin.PUT("/users/:id/role", deps.Admin.SetUserRole)
		admin.PUT("/users/:id/password", deps.Admin.ResetUserPassword)
		admin.DELETE("/users/:id", deps.Admin.DeleteUser)
		admin.GET("/users/:id/orders", deps.Admin.ListUserOrders)
		admin.GET("/users/:id/listings", deps.Admin.ListUserListings)

		admin.GET("/listings", deps.Admin.ListListings)
		admin.GET("/listings/:id", deps.Admin.GetListing)
		admin.PUT("/listings/:id", deps.Admin.ForceListingStatus)
		admin.DELETE("/listings/:id", deps.Admin.RemoveListing)

		admin.GET("/orders", deps.Admin.ListOrders)
		admin.GET("/orders/:id", deps.Admin.GetOrder)
		admin.PUT("/orders/:id/status", deps.Admin.UpdateOrderStatus)
	}

	return engine
}
