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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/create_booking"
	dailyCountsHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/daily_counts"
	deleteBookingHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/delete_booking"
	generateReceiptHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/generate_receipt"
	getAvailableRoomsHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/get_booking"
	getStatsHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/list_bookings"
	listCleaningHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/list_cleaning_statuses"
	listRoomsHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/list_rooms"
	loginHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/login"
	roomOccupancyHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/room_occupancy"
	runCleaningResetHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/run_cleaning_reset"
	setCleaningStatusHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/set_cleaning_status"
	updateBookingHandler "github.com/sunriver-hotel/frontdesk-service/internal/api/handlers/update_booking"
	"github.com/sunriver-hotel/frontdesk-service/internal/api/middleware"
	"github.com/sunriver-hotel/frontdesk-service/internal/config"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	cleaningRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/cleaning"
	guestRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/guest"
	roomRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/room"
	userRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/user"
	authService "github.com/sunriver-hotel/frontdesk-service/internal/service/auth"
	bookingsService "github.com/sunriver-hotel/frontdesk-service/internal/service/bookings"
	cleaningService "github.com/sunriver-hotel/frontdesk-service/internal/service/cleaning"
	roomsService "github.com/sunriver-hotel/frontdesk-service/internal/service/rooms"
	createBookingUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/create_booking"
	deleteBookingUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/delete_booking"
	generateReceiptUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/generate_receipt"
	getAvailableRoomsUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/get_available_rooms"
	runCleaningResetUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/run_cleaning_reset"
	updateBookingUC "github.com/sunriver-hotel/frontdesk-service/internal/usecase/update_booking"
	"github.com/sunriver-hotel/frontdesk-service/pkg/dbmetrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/logger"
	"github.com/sunriver-hotel/frontdesk-service/pkg/metrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/simpletxmanager"
	"github.com/sunriver-hotel/frontdesk-service/pkg/txmanager"
)

func main() {
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

	log.Info("Starting Sunriver frontdesk service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		roomRepository     *roomRepo.Repository
		guestRepository    *guestRepo.Repository
		cleaningRepository *cleaningRepo.Repository
		userRepository     *userRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		cleaningRepository = cleaningRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		cleaningRepository = cleaningRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, cfg.Auth.SessionKey, log)
	roomsSvc := roomsService.NewService(roomRepository, bookingRepository, cleaningRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, roomRepository, log)
	cleaningSvc := cleaningService.NewService(cleaningRepository, log)

	// Инициализируем use cases
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(bookingRepository, roomRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, roomRepository, guestRepository,
		txMgr, log, cfg.Pricing.DefaultNightlyRate,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository, roomRepository, guestRepository,
		txMgr, log, cfg.Pricing.DefaultNightlyRate,
	)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(bookingRepository, guestRepository, txMgr, log)
	generateReceiptUseCase := generateReceiptUC.NewUseCase(bookingRepository, roomRepository, log)
	runCleaningResetUseCase := runCleaningResetUC.NewUseCase(bookingRepository, cleaningRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	roomOccupancy := roomOccupancyHandler.NewHandler(roomsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	dailyCounts := dailyCountsHandler.NewHandler(bookingsSvc, log)
	getStats := getStatsHandler.NewHandler(bookingsSvc, log)
	listCleaning := listCleaningHandler.NewHandler(cleaningSvc, log)
	setCleaningStatus := setCleaningStatusHandler.NewHandler(cleaningSvc, log)
	runCleaningReset := runCleaningResetHandler.NewHandler(runCleaningResetUseCase, log)
	generateReceipt := generateReceiptHandler.NewHandler(generateReceiptUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют сессионный ключ)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, cfg.Auth.SessionHeader))

	// --- Комнаты ---
	protected.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/occupancy", roomOccupancy.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/daily-counts", dailyCounts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/receipt", generateReceipt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Статистика ---
	protected.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- Уборка ---
	protected.HandleFunc("/cleaning", listCleaning.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cleaning/reset", runCleaningReset.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cleaning/{roomNumber}", setCleaningStatus.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
