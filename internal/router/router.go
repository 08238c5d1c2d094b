// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-state/internal/config"
	"github.com/novamart/storefront-state/internal/container"
	"github.com/novamart/storefront-state/internal/handlers"
	"github.com/novamart/storefront-state/internal/middleware"
	"github.com/novamart/storefront-state/internal/utils"
)

// Initialize builds the HTTP consumer surface over an already-constructed
// state container. Reads are public; every mutation requires a bearer
// credential.
func Initialize(ctn *container.Container, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	orderHandler := handlers.NewOrderHandler(ctn.Orders)
	wishlistHandler := handlers.NewWishlistHandler(ctn.Wishlist)
	uiStateHandler := handlers.NewUIStateHandler(ctn.UIState)
	catalogHandler := handlers.NewCatalogHandler(ctn.Catalog)
	eventsHandler := handlers.NewEventsHandler(ctn.Bus)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.OptionalAuth())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Default())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/v1")
	{
		// Change feed (the subscribe half of the consumer surface)
		v1.GET("/events", eventsHandler.Stream)

		// Catalog (seeded, read-only)
		v1.GET("/products", catalogHandler.ListProducts)
		v1.GET("/products/:id", catalogHandler.GetProduct)
		v1.GET("/categories", catalogHandler.ListCategories)

		// Orders
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)

			protected := orders.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", orderHandler.CreateOrder)
				protected.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			}
		}
		v1.GET("/customers/:id/orders", orderHandler.GetCustomerOrders)
		v1.GET("/sellers/:id/orders", orderHandler.GetSellerOrders)

		// Wishlist
		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.ListWishlist)
			wishlist.GET("/:id", wishlistHandler.CheckWishlist)

			protected := wishlist.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", wishlistHandler.AddToWishlist)
				protected.POST("/toggle", wishlistHandler.ToggleWishlist)
				protected.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
			}
		}

		// Admin UI state
		uiState := v1.Group("/ui-state")
		{
			uiState.GET("", uiStateHandler.GetUIState)
			uiState.GET("/notifications", uiStateHandler.ListNotifications)

			protected := uiState.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.PUT("/theme", uiStateHandler.SetTheme)
				protected.PUT("/sidebar", uiStateHandler.SetSidebar)
				protected.PUT("/active-module", uiStateHandler.SetActiveModule)
				protected.PUT("/search", uiStateHandler.SetSearch)
				protected.POST("/notifications", uiStateHandler.PushNotification)
				protected.PUT("/notifications/:id/read", uiStateHandler.MarkNotificationRead)
				protected.DELETE("/notifications", uiStateHandler.ClearNotifications)
				protected.POST("/selected-items/:id/toggle", uiStateHandler.ToggleSelectedItem)
				protected.DELETE("/selected-items", uiStateHandler.ClearSelectedItems)
			}
		}
	}

	return r
}
