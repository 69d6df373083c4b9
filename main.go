package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fotoagenda/config"
	"fotoagenda/cron"
	"fotoagenda/database"
	bookingRepo "fotoagenda/database/repository/booking"
	scheduleRepo "fotoagenda/database/repository/schedule"
	"fotoagenda/handlers"
	"fotoagenda/routes"
	"fotoagenda/services/availability"
	"fotoagenda/services/booking"
	ai "fotoagenda/services/intelligence"
	"fotoagenda/services/notification"
	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	probes := map[string]utils.HealthProbe{}

	// repositories.
	var (
		bookings  bookingRepo.BookingRepository
		schedules scheduleRepo.ScheduleRepository
	)
	switch cfg.StoreDriver {
	case "mongo":
		database.InitDB()
		db := database.MongoDatabase()
		var err error
		if bookings, err = bookingRepo.NewMongoBookingRepo(ctx, db); err != nil {
			logger.Fatal("main: failed to init booking repository", zap.Error(err))
		}
		if schedules, err = scheduleRepo.NewMongoScheduleRepo(ctx, db); err != nil {
			logger.Fatal("main: failed to init schedule repository", zap.Error(err))
		}
		probes["mongo"] = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	case "postgres":
		database.InitPostgres()
		bookings = bookingRepo.NewGormBookingRepo(database.PostgresDB)
		schedules = scheduleRepo.NewGormScheduleRepo(database.PostgresDB)
		probes["postgres"] = func(ctx context.Context) error {
			sqlDB, err := database.PostgresDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	default:
		bookings = bookingRepo.NewMemoryBookingRepo()
		schedules = scheduleRepo.NewMemoryScheduleRepo()
	}

	if seeded, err := schedules.SeedIfEmpty(ctx, cfg.DefaultBusinessID, scheduleRepo.DefaultWeek(cfg.DefaultBusinessID)); err != nil {
		logger.Fatal("main: failed to seed weekly schedule", zap.Error(err))
	} else if seeded {
		logger.Info("Seeded default weekly schedule", zap.String("businessID", cfg.DefaultBusinessID))
	}

	// services.
	holidays := availability.NewStaticHolidays(config.SplitList(cfg.Holidays)...)
	engine := availability.NewEngine(schedules, bookings, holidays, cfg.Location())
	bookingService := booking.NewBookingService(bookings)

	var sessions ai.SessionStore
	switch cfg.SessionStore {
	case "redis":
		client := utils.GetSessionCacheClient()
		sessions = ai.NewRedisSessionStore(client, cfg.SessionTTL)
		probes["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	default:
		memory := ai.NewMemorySessionStore(cfg.SessionTTL)
		cron.StartSessionJanitor(ctx, memory, time.Minute)
		sessions = memory
	}

	var llm ai.LLMClient
	switch cfg.LLMProvider {
	case "gemini":
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("main: failed to init gemini client", zap.Error(err))
		}
		defer gemini.Close()
		llm = gemini
	default:
		llm = ai.NewOllamaClient(cfg.OllamaAPIBase, cfg.OllamaAPIKey, cfg.OllamaModel, cfg.LLMTimeout)
	}

	prompt, err := ai.NewPromptBuilder(cfg.PromptFile)
	if err != nil {
		logger.Fatal("main: failed to load agent prompt", zap.Error(err))
	}

	// notifications.
	sinks := []notification.Sink{notification.NewEmailSink(cfg)}
	if cfg.FirebaseCredentials != "" {
		fcm, err := utils.FirebaseInit(ctx, cfg.FirebaseCredentials)
		if err != nil {
			logger.Warn("main: push notifications disabled", zap.Error(err))
		} else {
			sinks = append(sinks, notification.NewPushSink(fcm, cfg.FirebaseTopic))
		}
	}
	delivery := notification.NewNotifier(cfg.NotificationRecipients(), sinks...)

	var bookingNotifier notification.BookingNotifier = delivery
	if cfg.NotifyQueue == "async" {
		queueClient := asynq.NewClient(cron.QueueRedisOpt())
		defer queueClient.Close()
		bookingNotifier = notification.NewNotifier(cfg.NotificationRecipients(), notification.NewQueueSink(queueClient, delivery.Channels()...))

		worker := cron.InitNotificationWorker(ctx, delivery)
		defer worker.Shutdown()
	}

	aiSvc, err := ai.NewAIService(llm, prompt, sessions, engine, bookingService, bookingNotifier, cfg.LLMTimeout)
	if err != nil {
		logger.Fatal("main: failed to init booking assistant", zap.Error(err))
	}

	utils.StartHealthMonitor(ctx, probes, 30*time.Second)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:         handlers.NewChatHandler(aiSvc),
		Availability: handlers.NewAvailabilityHandler(engine),
		Booking:      handlers.NewBookingHandler(bookingService),
		Admin:        handlers.NewAdminHandler(bookingService, schedules, cfg.DefaultBusinessID),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8000"
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
