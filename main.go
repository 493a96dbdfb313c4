package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonkit/config"
	"salonkit/cron"
	"salonkit/database"
	bookingRepoPkg "salonkit/database/repository/booking"
	bookingServiceRepoPkg "salonkit/database/repository/bookingservice"
	catalogRepoPkg "salonkit/database/repository/catalog"
	customerRepoPkg "salonkit/database/repository/customer"
	productRepoPkg "salonkit/database/repository/product"
	"salonkit/handlers"
	"salonkit/middleware"
	"salonkit/routes"
	"salonkit/services/booking"
	"salonkit/services/catalog"
	"salonkit/services/customer"
	"salonkit/services/dashboard"
	"salonkit/services/inventory"
	"salonkit/services/telemetry"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitKV()
	kv := database.GetKV()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewKVBookingRepo(kv)
	lineRepo := bookingServiceRepoPkg.NewKVBookingServiceRepo(kv)
	custRepo := customerRepoPkg.NewKVCustomerRepo(kv)
	prodRepo := productRepoPkg.NewKVProductRepo(kv)
	svcRepo := catalogRepoPkg.NewKVServiceRepo(kv)

	// telemetry sink.
	var sink telemetry.Sink = telemetry.NewZapSink(logger)
	var httpSink *telemetry.HTTPSink
	if endpoint := config.AppConfig.TelemetryEndpoint; endpoint != "" {
		httpSink = telemetry.NewHTTPSink(endpoint, logger)
		sink = telemetry.MultiSink{sink, httpSink}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Lines:     lineRepo,
		Customers: custRepo,
		Catalog:   svcRepo,
	}
	customerService := &customer.DefaultCustomerService{
		Repo:     custRepo,
		Bookings: bookingRepo,
	}
	inventoryService := &inventory.DefaultInventoryService{
		Repo: prodRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: svcRepo,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Bookings:   bookingRepo,
		Customers:  custRepo,
		Products:   prodRepo,
		BookingSvc: bookingService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBookingHandler:         bookingHandler.CreateBookingHandler,
		GetAllBookingsHandler:        bookingHandler.GetAllBookingsHandler,
		GetBookingByIDHandler:        bookingHandler.GetBookingByIDHandler,
		GetBookingsByDateHandler:     bookingHandler.GetBookingsByDateHandler,
		GetBookingsByCustomerHandler: bookingHandler.GetBookingsByCustomerHandler,
		UpdateBookingHandler:         bookingHandler.UpdateBookingHandler,
		UpdateBookingStatusHandler:   bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:         bookingHandler.DeleteBookingHandler,

		CreateCustomerHandler:   customerHandler.CreateCustomerHandler,
		GetAllCustomersHandler:  customerHandler.GetAllCustomersHandler,
		GetCustomerByIDHandler:  customerHandler.GetCustomerByIDHandler,
		GetCustomerStatsHandler: customerHandler.GetCustomerStatsHandler,
		UpdateCustomerHandler:   customerHandler.UpdateCustomerHandler,
		DeleteCustomerHandler:   customerHandler.DeleteCustomerHandler,

		CreateProductHandler:       inventoryHandler.CreateProductHandler,
		GetAllProductsHandler:      inventoryHandler.GetAllProductsHandler,
		GetLowStockProductsHandler: inventoryHandler.GetLowStockProductsHandler,
		GetProductByIDHandler:      inventoryHandler.GetProductByIDHandler,
		UpdateProductHandler:       inventoryHandler.UpdateProductHandler,
		AdjustStockHandler:         inventoryHandler.AdjustStockHandler,
		DeleteProductHandler:       inventoryHandler.DeleteProductHandler,

		CreateServiceHandler:       catalogHandler.CreateServiceHandler,
		GetAllServicesHandler:      catalogHandler.GetAllServicesHandler,
		GetServiceByIDHandler:      catalogHandler.GetServiceByIDHandler,
		UpdateServiceHandler:       catalogHandler.UpdateServiceHandler,
		ToggleServiceActiveHandler: catalogHandler.ToggleServiceActiveHandler,
		DeleteServiceHandler:       catalogHandler.DeleteServiceHandler,

		GetDashboardSummaryHandler: dashboardHandler.GetDashboardSummaryHandler,
		GetTodayBookingsHandler:    dashboardHandler.GetTodayBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs.
	scheduler, err := cron.StartLowStockScheduler(inventoryService, sink)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start low stock scheduler: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	scheduler.Stop()
	if httpSink != nil {
		httpSink.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
