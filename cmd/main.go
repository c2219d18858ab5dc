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

	createBookingHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/create_quote"
	createSessionHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/create_session"
	getAvailableSlotsHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/get_available_slots"
	getSessionAppointmentsHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/get_session_appointments"
	listAppointmentsHandler "github.com/AneFreitas/agendamentodeviagem/internal/api/handlers/list_appointments"
	"github.com/AneFreitas/agendamentodeviagem/internal/api/middleware"
	"github.com/AneFreitas/agendamentodeviagem/internal/config"
	"github.com/AneFreitas/agendamentodeviagem/internal/infra/quotestore"
	appointmentRepo "github.com/AneFreitas/agendamentodeviagem/internal/infra/storage/appointment"
	"github.com/AneFreitas/agendamentodeviagem/internal/integrations/distance"
	appointmentsService "github.com/AneFreitas/agendamentodeviagem/internal/service/appointments"
	"github.com/AneFreitas/agendamentodeviagem/internal/service/pricing"
	sessionService "github.com/AneFreitas/agendamentodeviagem/internal/service/session"
	"github.com/AneFreitas/agendamentodeviagem/internal/service/whatsapp"
	createBookingUC "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_booking"
	createQuoteUC "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_quote"
	getAvailableSlotsUC "github.com/AneFreitas/agendamentodeviagem/internal/usecase/get_available_slots"
	"github.com/AneFreitas/agendamentodeviagem/pkg/logger"
	"github.com/AneFreitas/agendamentodeviagem/pkg/metrics"
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

	log.Info("Starting agendamento-viagem service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Клиент сервиса расстояний: стаб, пока не настроен реальный URL
	var distanceClient distance.Client
	if cfg.DistanceService.URL != "" {
		distanceClient = distance.NewHTTPClient(
			cfg.DistanceService.URL,
			time.Duration(cfg.DistanceService.Timeout)*time.Second,
			log,
		)
		log.Info("Distance client initialized (url=%s, timeout=%ds)",
			cfg.DistanceService.URL, cfg.DistanceService.Timeout)
	} else {
		distanceClient = distance.NewStub(
			time.Duration(cfg.DistanceService.StubDelayMS)*time.Millisecond,
			log,
		)
		log.Info("Distance client initialized (stub, delay=%dms)", cfg.DistanceService.StubDelayMS)
	}

	// Инициализируем репозитории и хранилища
	appointmentRepository := appointmentRepo.NewRepository(db)
	quoteStore := quotestore.New()

	// Инициализируем сервисы
	sessions := sessionService.NewService(log)
	pricingEngine := pricing.NewEngine()
	linkBuilder := whatsapp.NewBuilder(cfg.Driver.Phone)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createQuoteUseCase := createQuoteUC.NewUseCase(
		distanceClient,
		pricingEngine,
		quoteStore,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		quoteStore,
		linkBuilder,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessions, log)
	createQuote := createQuoteHandler.NewHandler(createQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSessionAppointments := getSessionAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Инициализация анонимной сессии
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Слоты рабочего окна на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions, log))

	// Расчет стоимости поездки
	protected.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований сессии
	protected.HandleFunc("/sessions/{sessionId}/appointments",
		getSessionAppointments.Handle).Methods(http.MethodGet)

	// Сводка последних бронирований (для водителя)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

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
