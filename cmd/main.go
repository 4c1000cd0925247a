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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	createAppointmentHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/create_appointment"
	getBookingDatesHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/get_booking_dates"
	getBusinessSettingsHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/get_business_settings"
	getDaySlotsHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/get_day_slots"
	getPromoRulesHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/get_promo_rules"
	updateBusinessSettingsHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/update_business_settings"
	updatePromoRulesHandler "github.com/m04kA/BRB-AvailabilityService/internal/api/handlers/update_promo_rules"
	"github.com/m04kA/BRB-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/BRB-AvailabilityService/internal/config"
	appointmentsRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/appointments"
	blocksRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/blocks"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/catalog"
	durationStatsRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/durationstats"
	promosRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/promos"
	"github.com/m04kA/BRB-AvailabilityService/internal/jobs"
	promoRulesService "github.com/m04kA/BRB-AvailabilityService/internal/service/promorules"
	settingsService "github.com/m04kA/BRB-AvailabilityService/internal/service/settings"
	createAppointmentUC "github.com/m04kA/BRB-AvailabilityService/internal/usecase/create_appointment"
	getBookingDatesUC "github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_booking_dates"
	getDaySlotsUC "github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/BRB-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/logger"
	"github.com/m04kA/BRB-AvailabilityService/pkg/metrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/BRB-AvailabilityService/pkg/txmanager"
)

func main() {
	// Подхватываем .env (если есть) до чтения конфигурации
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

	log.Info("Starting BRB-AvailabilityService...")
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
		businessRepository     *businessRepo.Repository
		catalogRepository      *catalogRepo.Repository
		appointmentRepository  *appointmentsRepo.Repository
		blockRepository        *blocksRepo.Repository
		promoRepository        *promosRepo.Repository
		durationStatRepository *durationStatsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		businessRepository = businessRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentsRepo.NewRepository(wrappedDB)
		blockRepository = blocksRepo.NewRepository(wrappedDB)
		promoRepository = promosRepo.NewRepository(wrappedDB)
		durationStatRepository = durationStatsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		businessRepository = businessRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		appointmentRepository = appointmentsRepo.NewRepository(db)
		blockRepository = blocksRepo.NewRepository(db)
		promoRepository = promosRepo.NewRepository(db)
		durationStatRepository = durationStatsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(businessRepository, log)
	promoRulesSvc := promoRulesService.NewService(promoRepository, businessRepository, txMgr, log)

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		businessRepository,
		catalogRepository,
		appointmentRepository,
		blockRepository,
		durationStatRepository,
		promoRepository,
		log,
	)

	getBookingDatesUseCase := getBookingDatesUC.NewUseCase(businessRepository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		businessRepository,
		catalogRepository,
		appointmentRepository,
		blockRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getBookingDates := getBookingDatesHandler.NewHandler(getBookingDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getBusinessSettings := getBusinessSettingsHandler.NewHandler(settingsSvc, log)
	updateBusinessSettings := updateBusinessSettingsHandler.NewHandler(settingsSvc, log)
	getPromoRules := getPromoRulesHandler.NewHandler(promoRulesSvc, log)
	updatePromoRules := updatePromoRulesHandler.NewHandler(promoRulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, клиентская запись)
	// ============================================================

	public := api.PathPrefix("/public").Subrouter()

	// Слоты на день
	public.HandleFunc("/{slug}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Даты, доступные для записи
	public.HandleFunc("/{slug}/dates", getBookingDates.Handle).Methods(http.MethodGet)

	// Создание записи
	public.HandleFunc("/{slug}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, для менеджеров)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Настройки вычисления слотов
	protected.HandleFunc("/businesses/{businessId}/settings", getBusinessSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/settings", updateBusinessSettings.Handle).Methods(http.MethodPut)

	// Промо-правила
	protected.HandleFunc("/businesses/{businessId}/promo-rules", getPromoRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/promo-rules", updatePromoRules.Handle).Methods(http.MethodPut)

	// Фоновый пересчет статистики длительностей
	var cronRunner *cron.Cron
	if cfg.Stats.RecalcEnabled {
		cronRunner = cron.New()
		recalcJob := jobs.NewStatsRecalculator(durationStatRepository, log)
		if _, err := cronRunner.AddJob(cfg.Stats.RecalcSchedule, recalcJob); err != nil {
			log.Fatal("Failed to schedule stats recalculation: %v", err)
		}
		cronRunner.Start()
		log.Info("Duration stats recalculation scheduled: %s", cfg.Stats.RecalcSchedule)
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

	// Останавливаем cron и ждем завершения текущего пересчета
	if cronRunner != nil {
		<-cronRunner.Stop().Done()
		log.Info("Stats recalculation stopped")
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
