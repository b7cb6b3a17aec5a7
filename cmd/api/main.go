package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/attendance-api/internal/config"
	"github.com/attendance-api/internal/database"
	"github.com/attendance-api/internal/handler"
	"github.com/attendance-api/internal/repository"
	"github.com/attendance-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	empRepo := repository.NewEmployeeRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Инициализация сервисов
	reconciler := service.NewReconciler(empRepo, leaveRepo, attendanceRepo)
	aggregator := service.NewAggregator(reconciler, empRepo)
	reportService := service.NewReportService(attendanceRepo)
	empService := service.NewEmployeeService(empRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	attendanceService := service.NewAttendanceService(empRepo, leaveRepo, attendanceRepo, aggregator)

	// Инициализация хендлеров
	empHandler := handler.NewEmployeeHandler(empService, logger)
	leaveHandler := handler.NewLeaveHandler(leaveService, logger)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, reconciler, aggregator, reportService, logger)

	// Настройка роутера
	router := handler.NewRouter(empHandler, leaveHandler, attendanceHandler, cfg.Server.CORSOrigins, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
