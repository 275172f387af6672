package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/handlers"
	"kirana_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, a *handlers.API) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// --- Public ---
	api.POST("/auth/login", middleware.LoginRateLimit(), a.Login)
	api.GET("/products", a.GetProducts)
	api.GET("/products/:id", a.GetProductByID)
	api.GET("/search", a.SearchProducts)

	// --- Authentifié ---
	auth := api.Group("", middleware.AuthRequired())
	auth.POST("/auth/logout", a.Logout)

	auth.GET("/cart", a.GetCart)
	auth.POST("/cart/add", a.AddToCart)
	auth.PUT("/cart/:productId", a.UpdateCartQuantity)
	auth.DELETE("/cart/:productId", a.RemoveFromCart)
	auth.DELETE("/cart", a.ClearCart)

	auth.POST("/orders", a.CreateOrder)
	auth.GET("/orders", a.GetOrders)
	auth.GET("/orders/:id", a.GetOrderByID)

	auth.GET("/loyalty", a.GetLoyaltyBalance)
	auth.POST("/loyalty/earn", a.EarnLoyaltyPoints)
	auth.POST("/loyalty/redeem", a.RedeemLoyaltyPoints)

	// --- Magasin (retailer + admin) ---
	retailer := auth.Group("", middleware.RequireRetailer)
	retailer.GET("/inventory", a.GetInventory)
	retailer.PUT("/inventory/:productId", a.UpdateInventory)
	retailer.GET("/inventory/low-stock", a.CheckLowStock)
	retailer.POST("/inventory/audit", a.SubmitAudit)
	retailer.POST("/pos/checkout", a.POSCheckout)
	retailer.GET("/events", a.GetSuspiciousEvents)
	retailer.POST("/events", a.AddSuspiciousEvent)
	retailer.GET("/alerts/ws", a.AlertsWebSocket)

	// --- Admin ---
	admin := auth.Group("", middleware.RequireAdmin)
	admin.PUT("/orders/:id/status", a.UpdateOrderStatus)
	admin.GET("/admin/dashboard", a.Dashboard)
}
