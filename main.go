// File: bistrovoice/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistrovoice/config"
	"bistrovoice/cron"
	"bistrovoice/database"
	bookingRepo "bistrovoice/database/repository/booking"
	"bistrovoice/handlers"
	"bistrovoice/middleware"
	"bistrovoice/resolvers"
	"bistrovoice/routes"
	ai "bistrovoice/services/intelligence"
	"bistrovoice/services/notification"
	"bistrovoice/services/tasks"
	"bistrovoice/services/weather"
	"bistrovoice/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
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
	router.Use(cors.Default())

	// repositories.
	repo := bookingRepo.NewMongoBookingRepo()

	// services.
	extractor := ai.NewGeminiIntentExtractor(
		config.AppConfig.GeminiAPIKey,
		time.Duration(config.AppConfig.ExtractionTimeoutSecs)*time.Second,
	)
	forecastSvc := weather.NewOpenWeatherService(
		config.AppConfig.OpenWeatherAPIKey,
		config.AppConfig.RestaurantLat,
		config.AppConfig.RestaurantLon,
		utils.GetCacheClient(),
	)

	queueOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	dispatcher := tasks.NewAsynqDispatcher(queueOpt)

	notifSvc, err := notification.NewSMSNotificationService(
		context.Background(),
		config.AppConfig.AWSRegion,
		config.AppConfig.RestaurantName,
		config.AppConfig.FallbackPhoneNumber,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitNotificationWorker(notifSvc)

	resolver := resolvers.NewResolver(
		extractor,
		forecastSvc,
		repo,
		dispatcher,
		config.AppConfig.FallbackPhoneNumber,
	)
	bookingHandler := handlers.NewBookingHandler(resolver, repo, logger)

	// Register routes and start the health monitor.
	routes.RegisterRoutes(router, bookingHandler)
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
