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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_bookings"
	getContainerHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_container"
	getContainersHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_containers"
	getScanEventsHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/get_scan_events"
	reseedAvailabilityHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/reseed_availability"
	scanSessionHandler "github.com/m04kA/SMC-TerminalService/internal/api/handlers/scan_session"
	"github.com/m04kA/SMC-TerminalService/internal/api/middleware"
	"github.com/m04kA/SMC-TerminalService/internal/config"
	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/internal/infra/sessionstore"
	slotStore "github.com/m04kA/SMC-TerminalService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/booking"
	containerRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/container"
	scanlogRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/scanlog"
	"github.com/m04kA/SMC-TerminalService/internal/integrations/capturedevice"
	"github.com/m04kA/SMC-TerminalService/internal/scanner"
	bookingsService "github.com/m04kA/SMC-TerminalService/internal/service/bookings"
	containersService "github.com/m04kA/SMC-TerminalService/internal/service/containers"
	scansService "github.com/m04kA/SMC-TerminalService/internal/service/scans"
	"github.com/m04kA/SMC-TerminalService/internal/slotcalendar"
	"github.com/m04kA/SMC-TerminalService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TerminalService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-TerminalService/internal/worker"
	"github.com/m04kA/SMC-TerminalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TerminalService/pkg/idgen"
	"github.com/m04kA/SMC-TerminalService/pkg/logger"
	"github.com/m04kA/SMC-TerminalService/pkg/metrics"
	"github.com/m04kA/SMC-TerminalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TerminalService/pkg/txmanager"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
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

	log.Info("Starting SMC-TerminalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Подключаемся к Redis (сессии операторов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	sessionStore := sessionstore.NewStore(redisClient, time.Duration(cfg.Redis.SessionTTL)*time.Second)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		containerRepository *containerRepo.Repository
		scanLogRepository   *scanlogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		containerRepository = containerRepo.NewRepository(wrappedDB)
		scanLogRepository = scanlogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		containerRepository = containerRepo.NewRepository(db)
		scanLogRepository = scanlogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Засеиваем счетчики идентификаторов от текущего содержимого БД,
	// чтобы номера продолжались после рестарта
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	bookingCount, err := bookingRepository.Count(startupCtx)
	if err != nil {
		log.Fatal("Failed to count bookings: %v", err)
	}
	scanCount, err := scanLogRepository.Count(startupCtx)
	if err != nil {
		log.Fatal("Failed to count scan events: %v", err)
	}

	bookingSeq := idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase+bookingCount)
	scanSeq := idgen.NewPaddedSequence(domain.ScanIDPrefix, scanCount, domain.ScanIDPadding)
	log.Info("ID sequences seeded: bookings=%d, scans=%d", bookingCount, scanCount)

	// Календарь слотов: случайная подвыборка часов на каждую дату горизонта
	calendarCfg := slotcalendar.Config{
		HorizonDays: cfg.Calendar.HorizonDays,
		OpenHour:    types.TimeString(cfg.Calendar.OpenHour),
		CloseHour:   types.TimeString(cfg.Calendar.CloseHour),
		StepMinutes: cfg.Calendar.StepMinutes,
	}
	seed := cfg.Calendar.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	calendarSource := slotcalendar.NewSource(calendarCfg, slotcalendar.DefaultRandomSubsetPolicy(seed))

	availability := slotStore.NewStore(calendarSource, log)
	if err := availability.Reseed(startupCtx); err != nil {
		log.Fatal("Failed to seed availability calendar: %v", err)
	}

	// Клиент шлюза камеры и контроллер сессии сканирования
	captureClient := capturedevice.NewClient(
		cfg.Capture.URL,
		time.Duration(cfg.Capture.Timeout)*time.Second,
		log,
	)
	constraints := capturedevice.Constraints{
		FacingMode: cfg.Capture.FacingMode,
		FPS:        cfg.Capture.FPS,
	}
	if constraints.FacingMode == "" {
		constraints = capturedevice.DefaultConstraints()
	}

	// Инициализируем сервисы
	scanSvc := scansService.NewService(scanLogRepository, scanSeq, log)
	bookingSvc := bookingsService.NewService(bookingRepository, containerRepository, txMgr, log)
	containerSvc := containersService.NewService(containerRepository, log)

	scanController := scanner.NewController(captureClient, scanSvc, bookingRepository, constraints, log)

	// Инициализируем use cases
	createBookingUseCase := create_booking.NewUseCase(
		containerRepository,
		bookingRepository,
		availability,
		bookingSeq,
		txMgr,
		log,
	)
	getAvailabilityUseCase := get_availability.NewUseCase(availability, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getContainers := getContainersHandler.NewHandler(containerSvc, log)
	getContainer := getContainerHandler.NewHandler(containerSvc, log)
	getScanEvents := getScanEventsHandler.NewHandler(scanSvc, log)
	scanSession := scanSessionHandler.NewHandler(scanController, log)
	reseedAvailability := reseedAvailabilityHandler.NewHandler(availability, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Открытые даты и часы для записи
	api.HandleFunc("/availability/dates", getAvailability.HandleDates).Methods(http.MethodGet)
	api.HandleFunc("/availability/dates/{date}/hours", getAvailability.HandleHours).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Auth-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionStore, log))

	// --- Записи на въезд ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Контейнеры ---
	protected.HandleFunc("/containers", getContainers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/containers/{id}", getContainer.Handle).Methods(http.MethodGet)

	// --- Журнал сканирований ---
	protected.HandleFunc("/scans", getScanEvents.Handle).Methods(http.MethodGet)

	// --- Сессия сканирования на воротах (только для менеджеров) ---
	managerOnly := protected.PathPrefix("/scan-session").Subrouter()
	managerOnly.Use(middleware.RequireRole(log, sessionstore.RoleManager, sessionstore.RoleAdmin))
	managerOnly.HandleFunc("", scanSession.HandleState).Methods(http.MethodGet)
	managerOnly.HandleFunc("/start", scanSession.HandleStart).Methods(http.MethodPost)
	managerOnly.HandleFunc("/restart", scanSession.HandleRestart).Methods(http.MethodPost)
	managerOnly.HandleFunc("/confirm", scanSession.HandleConfirm).Methods(http.MethodPost)
	managerOnly.HandleFunc("/stop", scanSession.HandleStop).Methods(http.MethodPost)

	// --- Пересборка календаря (только для администраторов) ---
	adminOnly := protected.PathPrefix("/availability").Subrouter()
	adminOnly.Use(middleware.RequireRole(log, sessionstore.RoleAdmin))
	adminOnly.HandleFunc("/reseed", reseedAvailability.Handle).Methods(http.MethodPost)

	// Фоновый воркер ночной пересборки календаря
	var reseedWorker *worker.Worker
	if cfg.Worker.Enabled {
		reseedWorker = worker.New(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, availability, cfg.Worker.ReseedCron, log)

		go func() {
			if err := reseedWorker.Run(); err != nil {
				log.Error("Worker stopped with error: %v", err)
			}
		}()
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

	// Освобождаем камеру, если сессия активна
	if err := scanController.Close(); err != nil {
		log.Error("Failed to close scan session: %v", err)
	}

	if reseedWorker != nil {
		reseedWorker.Shutdown()
	}

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
