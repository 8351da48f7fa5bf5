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

	cancelLessonHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/cancel_lesson"
	cancelLessonSeriesHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/cancel_lesson_series"
	completeLessonHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/complete_lesson"
	getAvailableSlotsHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/get_available_slots"
	getCoachScheduleHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/get_coach_schedule"
	getLessonHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/get_lesson"
	replaceWorkoutHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/replace_workout_with_lesson"
	scheduleLessonHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/schedule_lesson"
	scheduleRecurringHandler "github.com/fitlink/FL-SchedulingService/internal/api/handlers/schedule_recurring_lessons"
	"github.com/fitlink/FL-SchedulingService/internal/api/middleware"
	"github.com/fitlink/FL-SchedulingService/internal/config"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	profileServiceClient "github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
	programServiceClient "github.com/fitlink/FL-SchedulingService/internal/integrations/programservice"
	lessonsService "github.com/fitlink/FL-SchedulingService/internal/service/lessons"
	getAvailableSlotsUC "github.com/fitlink/FL-SchedulingService/internal/usecase/get_available_slots"
	replaceWorkoutUC "github.com/fitlink/FL-SchedulingService/internal/usecase/replace_workout_with_lesson"
	scheduleLessonUC "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_lesson"
	scheduleRecurringUC "github.com/fitlink/FL-SchedulingService/internal/usecase/schedule_recurring_lessons"
	"github.com/fitlink/FL-SchedulingService/pkg/dbmetrics"
	"github.com/fitlink/FL-SchedulingService/pkg/logger"
	"github.com/fitlink/FL-SchedulingService/pkg/metrics"
	"github.com/fitlink/FL-SchedulingService/pkg/simpletxmanager"
	"github.com/fitlink/FL-SchedulingService/pkg/txmanager"
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

	log.Info("Starting FL-SchedulingService...")
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

	// Подключаемся к Redis (pub/sub событий планировщика)
	redisClient, err := events.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)

	publisher := events.NewPublisher(redisClient, log)

	// Инициализируем интеграционных клиентов
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	programClient := programServiceClient.NewClient(
		cfg.ProgramService.URL,
		time.Duration(cfg.ProgramService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds, ProgramService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout, cfg.ProgramService.URL, cfg.ProgramService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var lessonRepository *lessonRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		lessonRepository = lessonRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		lessonRepository = lessonRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	lessonSvc := lessonsService.NewService(
		lessonRepository,
		publisher,
		log,
	)

	// Инициализируем use cases
	scheduleLessonUseCase := scheduleLessonUC.NewUseCase(
		lessonRepository,
		txMgr,
		publisher,
		log,
	)

	scheduleRecurringUseCase := scheduleRecurringUC.NewUseCase(
		lessonRepository,
		profileClient,
		txMgr,
		publisher,
		log,
	)

	replaceWorkoutUseCase := replaceWorkoutUC.NewUseCase(
		lessonRepository,
		programClient,
		publisher,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		lessonRepository,
		profileClient,
		log,
	)

	// Инициализируем handlers
	scheduleLesson := scheduleLessonHandler.NewHandler(scheduleLessonUseCase, log)
	scheduleRecurring := scheduleRecurringHandler.NewHandler(scheduleRecurringUseCase, log)
	replaceWorkout := replaceWorkoutHandler.NewHandler(replaceWorkoutUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getLesson := getLessonHandler.NewHandler(lessonSvc, log)
	cancelLesson := cancelLessonHandler.NewHandler(lessonSvc, log)
	cancelLessonSeries := cancelLessonSeriesHandler.NewHandler(lessonSvc, log)
	completeLesson := completeLessonHandler.NewHandler(lessonSvc, log)
	getCoachSchedule := getCoachScheduleHandler.NewHandler(lessonSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты тренера на дату
	api.HandleFunc("/coaches/{coachId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Запись на занятия ---
	// Разовое занятие
	protected.HandleFunc("/lessons", scheduleLesson.Handle).Methods(http.MethodPost)

	// Регулярная серия занятий
	protected.HandleFunc("/lessons/recurring", scheduleRecurring.Handle).Methods(http.MethodPost)

	// Замена тренировки программы на занятие с тренером
	protected.HandleFunc("/programs/{programId}/replace-workout",
		replaceWorkout.Handle).Methods(http.MethodPost)

	// --- Управление занятиями ---
	// Получение занятия по ID
	protected.HandleFunc("/lessons/{lessonId}", getLesson.Handle).Methods(http.MethodGet)

	// Отмена занятия
	protected.HandleFunc("/lessons/{lessonId}/cancel", cancelLesson.Handle).Methods(http.MethodPatch)

	// Отмена серии занятий
	protected.HandleFunc("/lessons/series/{seriesId}/cancel",
		cancelLessonSeries.Handle).Methods(http.MethodPatch)

	// Завершение занятия (проведено или неявка)
	protected.HandleFunc("/lessons/{lessonId}/complete", completeLesson.Handle).Methods(http.MethodPatch)

	// --- Расписание тренера ---
	protected.HandleFunc("/coaches/{coachId}/schedule", getCoachSchedule.Handle).Methods(http.MethodGet)

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
