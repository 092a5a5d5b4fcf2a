package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"amur-backend/config"
	httpapi "amur-backend/internal/api/http"
	"amur-backend/internal/notify"
	"amur-backend/internal/qr"
	"amur-backend/internal/service"
	"amur-backend/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	db := config.MustInitPostgres()
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaTopic)
	defer kafkaWriter.Close()

	users := storage.NewUserRepository(db)
	foods := storage.NewFoodRepository(db)
	orders := storage.NewOrderRepository(db)
	reviews := storage.NewReviewRepository(db)
	notifications := storage.NewNotificationRepository(db)
	promotions := storage.NewPromotionRepository(db)
	inventory := storage.NewInventoryRepository(db)
	staff := storage.NewStaffRepository(db)
	tickets := storage.NewTicketRepository(db)
	settings := storage.NewSettingsRepository(db)

	sequence := storage.NewOrderSequence(redisClient)
	popularity := storage.NewPopularity(redisClient)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	telegram := notify.NewTelegramClient(cfg.TelegramToken)
	dispatcher := notify.NewDispatcher(telegram, cfg.PushBuffer)
	defer dispatcher.Close()

	inbox := service.NewNotificationService(notifications)
	notifier := service.NewOrderNotifier(users, inbox, dispatcher, cfg.TelegramGroupID)

	orderSvc := service.NewOrderService(
		orders, foods, users, sequence, publisher, popularity, notifier,
		qr.NewEncoder(cfg.BaseURL),
	)

	handler := &httpapi.Handler{
		Auth:          service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL),
		Catalog:       service.NewCatalogService(foods),
		Orders:        orderSvc,
		Reviews:       service.NewReviewService(reviews, foods),
		Notifications: inbox,
		Promotions:    service.NewPromotionService(promotions),
		Inventory:     service.NewInventoryService(inventory, users, inbox),
		Staff:         service.NewStaffService(staff),
		Tickets:       service.NewTicketService(tickets),
		Settings:      service.NewSettingsService(settings),
		Analytics:     service.NewAnalyticsService(orders, users, foods, popularity),
		UploadDir:     cfg.UploadDir,
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept-Language"},
	}).Handler(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	go func() {
		log.Printf("[amur] listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("[amur] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[amur] shutdown: %v", err)
	}
}
