package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays declarative.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler         gin.HandlerFunc
	GetAllBookingsHandler        gin.HandlerFunc
	GetBookingByIDHandler        gin.HandlerFunc
	GetBookingsByDateHandler     gin.HandlerFunc
	GetBookingsByCustomerHandler gin.HandlerFunc
	UpdateBookingHandler         gin.HandlerFunc
	UpdateBookingStatusHandler   gin.HandlerFunc
	DeleteBookingHandler         gin.HandlerFunc

	// Customer endpoints
	CreateCustomerHandler   gin.HandlerFunc
	GetAllCustomersHandler  gin.HandlerFunc
	GetCustomerByIDHandler  gin.HandlerFunc
	GetCustomerStatsHandler gin.HandlerFunc
	UpdateCustomerHandler   gin.HandlerFunc
	DeleteCustomerHandler   gin.HandlerFunc

	// Product endpoints
	CreateProductHandler       gin.HandlerFunc
	GetAllProductsHandler      gin.HandlerFunc
	GetLowStockProductsHandler gin.HandlerFunc
	GetProductByIDHandler      gin.HandlerFunc
	UpdateProductHandler       gin.HandlerFunc
	AdjustStockHandler         gin.HandlerFunc
	DeleteProductHandler       gin.HandlerFunc

	// Catalog endpoints
	CreateServiceHandler       gin.HandlerFunc
	GetAllServicesHandler      gin.HandlerFunc
	GetServiceByIDHandler      gin.HandlerFunc
	UpdateServiceHandler       gin.HandlerFunc
	ToggleServiceActiveHandler gin.HandlerFunc
	DeleteServiceHandler       gin.HandlerFunc

	// Dashboard endpoints
	GetDashboardSummaryHandler gin.HandlerFunc
	GetTodayBookingsHandler    gin.HandlerFunc
}
