package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getRefundQuoteHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_refund_quote"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user_bookings"
	getVenueBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_venue_bookings"
	getVenuePolicyHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_venue_policy"
	markNoShowHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/mark_no_show"
	quoteBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/quote_booking"
	resetVenuePolicyHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/reset_venue_policy"
	updateVenuePolicyHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_venue_policy"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	policyRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/policy"
	venueServiceClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	policyService "github.com/m04kA/SMC-CourtBookingService/internal/service/policy"
	cancelBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
	getRefundQuoteUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_refund_quote"
	quoteBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

// eventPublisher общий интерфейс RabbitMQ и noop публикаторов
type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, b *domain.Booking) error
	PublishBookingCancelled(ctx context.Context, b *domain.Booking) error
	Close() error
}

func main() {
	// .env необязателен, переменные окружения переопределяют config.toml
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtBookingService...")

	location, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	globalPolicy, err := cfg.Policy.ToPolicy()
	if err != nil {
		log.Fatal("Invalid global booking policy: %v", err)
	}
	log.Info("Global policy loaded (timezone=%s, lead=%dh..%dd, duration=%d..%dmin, commission=%.2f)",
		location, globalPolicy.Booking.MinLeadHours, globalPolicy.Booking.MaxLeadDays,
		globalPolicy.Booking.MinDurationMinutes, globalPolicy.Booking.MaxDurationMinutes,
		globalPolicy.Booking.CommissionRate)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы ничего не делают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	log.Info("VenueService client initialized (url=%s, timeout=%ds)", cfg.VenueService.URL, cfg.VenueService.Timeout)

	// Публикация событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := events.NewPublisher(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbitPublisher
		log.Info("RabbitMQ publisher initialized (exchange=%s)", cfg.RabbitMQ.Exchange)
	}
	defer publisher.Close()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	policySvc := policyService.NewService(
		policyRepository,
		venueClient,
		globalPolicy,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		venueClient,
		location,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		venueClient,
		policySvc,
		metricsCollector,
		location,
		log,
	)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		venueClient,
		policySvc,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueClient,
		policySvc,
		publisher,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		venueClient,
		policySvc,
		publisher,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	getRefundQuoteUseCase := getRefundQuoteUC.NewUseCase(
		bookingRepository,
		venueClient,
		policySvc,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getRefundQuote := getRefundQuoteHandler.NewHandler(getRefundQuoteUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	markNoShow := markNoShowHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getVenuePolicy := getVenuePolicyHandler.NewHandler(policySvc, log)
	updateVenuePolicy := updateVenuePolicyHandler.NewHandler(policySvc, log)
	resetVenuePolicy := resetVenuePolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты корта на день
	api.HandleFunc("/courts/{courtId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Предварительный расчёт бронирования
	api.HandleFunc("/courts/{courtId}/quote", quoteBooking.Handle).Methods(http.MethodGet)

	// Действующая политика площадки
	api.HandleFunc("/venues/{venueId}/policy", getVenuePolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/refund-quote", getRefundQuote.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для менеджеров) ---
	protected.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/policy", updateVenuePolicy.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{venueId}/policy", resetVenuePolicy.Handle).Methods(http.MethodDelete)

	// Планировщик завершения бронирований
	var completionScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		completionScheduler = scheduler.New(bookingRepository, metricsCollector, location, log)
		if err := completionScheduler.Start(cfg.Scheduler.CompleteBookingsCron); err != nil {
			log.Fatal("Failed to start scheduler: %v", err)
		}
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if completionScheduler != nil {
		completionScheduler.Stop()
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
