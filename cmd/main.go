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

	blockDayHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/block_day"
	blockTimeHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/block_time"
	cancelAppointmentHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/create_professional"
	deleteAppointmentHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/delete_appointment"
	getAgendaHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_agenda"
	getAvailableDatesHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_available_dates"
	getAvailableProfessionalsHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_available_professionals"
	getAvailableSlotsHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_available_slots"
	getBlockedDaysHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_blocked_days"
	getClientAppointmentsHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_client_appointments"
	getSettingsHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/get_settings"
	unblockDayHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/unblock_day"
	unblockTimeHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/unblock_time"
	updateAppointmentStatusHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/update_appointment_status"
	updateProfessionalHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/update_professional"
	updateSettingsHandler "github.com/cortafila/CF-BookingService/internal/api/handlers/update_settings"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	"github.com/cortafila/CF-BookingService/internal/config"
	appointmentRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/appointment"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	clientRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/client"
	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
	settingsRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/settings"
	authServiceClient "github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	appointmentsService "github.com/cortafila/CF-BookingService/internal/service/appointments"
	blockedDaysService "github.com/cortafila/CF-BookingService/internal/service/blockeddays"
	professionalsService "github.com/cortafila/CF-BookingService/internal/service/professionals"
	settingsService "github.com/cortafila/CF-BookingService/internal/service/settings"
	createAppointmentUC "github.com/cortafila/CF-BookingService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/cortafila/CF-BookingService/internal/usecase/get_available_dates"
	getAvailableProfessionalsUC "github.com/cortafila/CF-BookingService/internal/usecase/get_available_professionals"
	getAvailableSlotsUC "github.com/cortafila/CF-BookingService/internal/usecase/get_available_slots"
	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
	"github.com/cortafila/CF-BookingService/pkg/logger"
	"github.com/cortafila/CF-BookingService/pkg/metrics"
	"github.com/cortafila/CF-BookingService/pkg/simpletxmanager"
	"github.com/cortafila/CF-BookingService/pkg/txmanager"
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

	log.Info("Starting CF-BookingService...")
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

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s, timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		professionalRepository *professionalRepo.Repository
		serviceRepository      *serviceRepo.Repository
		clientRepository       *clientRepo.Repository
		blockedRepository      *blockedRepo.Repository
		settingsRepository     *settingsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		blockedRepository = blockedRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		blockedRepository = blockedRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		txMgr,
		log,
	)
	professionalsSvc := professionalsService.NewService(
		professionalRepository,
		serviceRepository,
		log,
	)
	blockedDaysSvc := blockedDaysService.NewService(
		blockedRepository,
		appointmentRepository,
		professionalRepository,
		txMgr,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		serviceRepository,
		professionalRepository,
		blockedRepository,
		settingsRepository,
		log,
	)
	getAvailableProfessionalsUseCase := getAvailableProfessionalsUC.NewUseCase(
		serviceRepository,
		professionalRepository,
		blockedRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		blockedRepository,
		settingsRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		professionalRepository,
		serviceRepository,
		blockedRepository,
		settingsRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableProfessionals := getAvailableProfessionalsHandler.NewHandler(getAvailableProfessionalsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAgenda := getAgendaHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	blockDay := blockDayHandler.NewHandler(blockedDaysSvc, log)
	unblockDay := unblockDayHandler.NewHandler(blockedDaysSvc, log)
	getBlockedDays := getBlockedDaysHandler.NewHandler(blockedDaysSvc, log)
	blockTime := blockTimeHandler.NewHandler(blockedDaysSvc, log)
	unblockTime := unblockTimeHandler.NewHandler(blockedDaysSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalsSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(professionalsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский флоу записи, без аутентификации)
	// ============================================================

	// Воронка записи: даты -> профессионалы -> слоты -> создание записи
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/professionals", getAvailableProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Клиентский портал: просмотр своих записей по телефону
	api.HandleFunc("/clients/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (админка, требуют Bearer токен)
	// ============================================================

	auth := middleware.NewAuth(authClient, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Handler)

	// --- Агенда и жизненный цикл записей ---
	protected.HandleFunc("/appointments", getAgenda.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Блокировки расписания ---
	protected.HandleFunc("/blocked-days", blockDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-days/{id}", unblockDay.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/professionals/{id}/blocked-days", getBlockedDays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-times", blockTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-times/{id}", unblockTime.Handle).Methods(http.MethodDelete)

	// --- Настройки бизнеса ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Управление профессионалами (только админ) ---
	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{id}", updateProfessional.Handle).Methods(http.MethodPut)

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
