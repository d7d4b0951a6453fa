package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ovenlight/bakeshop/internal/server/http/handlers"
	"github.com/ovenlight/bakeshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics := middleware.NewHTTPMetrics(registry)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	adminProducts := handlers.NewAdminProductHandler(facade)
	adminOrders := handlers.NewAdminOrderHandler(facade)
	adminUsers := handlers.NewAdminUserHandler(facade)
	adminMessages := handlers.NewAdminMessageHandler(facade)
	adminStats := handlers.NewAdminStatsHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.POST("/contact", contactHandler.Submit)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", middleware.AuthOptional(facade), authHandler.Session)

	customer := api.Group("")
	customer.Use(middleware.AuthRequired(facade))
	customer.POST("/cart", cartHandler.Add)
	customer.GET("/cart", cartHandler.Get)
	customer.PATCH("/cart/:id", cartHandler.Update)
	customer.DELETE("/cart/:id", cartHandler.Remove)
	customer.DELETE("/cart", cartHandler.Clear)
	customer.POST("/cart/checkout", orderHandler.Checkout)
	customer.GET("/orders", orderHandler.List)
	customer.GET("/orders/:id", orderHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/products", adminProducts.List)
	admin.GET("/products/archived", adminProducts.ListArchived)
	admin.GET("/products/:id", adminProducts.Get)
	admin.POST("/products", adminProducts.Create)
	admin.PUT("/products/:id", adminProducts.Update)
	admin.DELETE("/products/:id", adminProducts.Archive)
	admin.POST("/products/:id/restore", adminProducts.Restore)
	admin.GET("/orders", adminOrders.List)
	admin.GET("/orders/:id", adminOrders.Get)
	admin.PATCH("/orders/:id/status", adminOrders.UpdateStatus)
	admin.DELETE("/orders/:id", adminOrders.Delete)
	admin.GET("/users", adminUsers.List)
	admin.GET("/users/:id", adminUsers.Get)
	admin.PUT("/users/:id", adminUsers.Update)
	admin.DELETE("/users/:id", adminUsers.Delete)
	admin.GET("/messages", adminMessages.List)
	admin.PATCH("/messages/:id/status", adminMessages.UpdateStatus)
	admin.DELETE("/messages/:id", adminMessages.Delete)
	admin.GET("/stats", adminStats.Get)

	return engine
}
