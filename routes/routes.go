package routes

import (
	"net/http"
	"time"

	"salonkit/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.GetAllBookingsHandler)
		api.GET("/date/:date", hb.GetBookingsByDateHandler)
		api.GET("/customer/:customerID", hb.GetBookingsByCustomerHandler)
		api.GET("/:id", hb.GetBookingByIDHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.PUT("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterCustomerRoutes registers customer endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("", hb.CreateCustomerHandler)
		api.GET("", hb.GetAllCustomersHandler)
		api.GET("/:id", hb.GetCustomerByIDHandler)
		api.GET("/:id/stats", hb.GetCustomerStatsHandler)
		api.PATCH("/:id", hb.UpdateCustomerHandler)
		api.DELETE("/:id", hb.DeleteCustomerHandler)
	}
}

// RegisterProductRoutes registers inventory endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.POST("", hb.CreateProductHandler)
		api.GET("", hb.GetAllProductsHandler)
		api.GET("/low-stock", hb.GetLowStockProductsHandler)
		api.GET("/:id", hb.GetProductByIDHandler)
		api.PATCH("/:id", hb.UpdateProductHandler)
		api.PUT("/:id/stock", hb.AdjustStockHandler)
		api.DELETE("/:id", hb.DeleteProductHandler)
	}
}

// RegisterCatalogRoutes registers treatment catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("", hb.CreateServiceHandler)
		api.GET("", hb.GetAllServicesHandler)
		api.GET("/:id", hb.GetServiceByIDHandler)
		api.PATCH("/:id", hb.UpdateServiceHandler)
		api.PUT("/:id/toggle", hb.ToggleServiceActiveHandler)
		api.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterDashboardRoutes registers the daily summary endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("", hb.GetDashboardSummaryHandler)
		api.GET("/today", hb.GetTodayBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SalonKit"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
