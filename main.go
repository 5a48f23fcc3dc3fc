// File: qport/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"qport/config"
	"qport/database"
	leadsRepo "qport/database/repository/leads"
	"qport/handlers"
	"qport/middleware"
	"qport/routes"
	"qport/services/booking"
	"qport/services/notify"
	"qport/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	var leads leadsRepo.LeadRepository
	if database.MongoClient != nil {
		leads = leadsRepo.NewMongoLeadRepo()
	}

	// services.
	bookingService := &booking.DefaultDemoBookingService{
		Leads:  leads,
		Mailer: notify.NewDefaultMailer(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	slotsHandler := handlers.NewSlotsHandler(utils.GetCacheClient())

	routes.RegisterRoutes(router, bookingHandler, slotsHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
