package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	expenseapp "github.com/laundrify/backend/internal/application/expense"
	orderapp "github.com/laundrify/backend/internal/application/order"
	payrollapp "github.com/laundrify/backend/internal/application/payroll"
	reportapp "github.com/laundrify/backend/internal/application/report"
	staffapp "github.com/laundrify/backend/internal/application/staff"
	auditinfra "github.com/laundrify/backend/internal/infrastructure/audit"
	"github.com/laundrify/backend/internal/infrastructure/cache"
	"github.com/laundrify/backend/internal/infrastructure/config"
	"github.com/laundrify/backend/internal/infrastructure/logger"
	"github.com/laundrify/backend/internal/infrastructure/persistence"
	"github.com/laundrify/backend/internal/interfaces/http/handler"
	"github.com/laundrify/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting laundry backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database connected")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	attendanceRepo := persistence.NewGormAttendanceRepository(db.DB)
	salaryRepo := persistence.NewGormSalaryRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)

	recorder := auditinfra.NewRecorder(auditRepo, log)

	// Report cache is optional; without Redis reports are computed fresh
	var reportCache reportapp.Cache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unreachable, report cache disabled", zap.Error(err))
		} else {
			reportCache = cache.NewRedisReportCache(client, cfg.Report.CacheTTL, log)
			log.Info("Report cache enabled", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Application services
	orderService := orderapp.NewService(orderRepo, recorder)
	expenseService := expenseapp.NewService(expenseRepo, recorder)
	staffService := staffapp.NewService(staffRepo, attendanceRepo, recorder)
	settlementService := payrollapp.NewSettlementService(staffRepo, salaryRepo, expenseRepo, recorder, log)
	reportService := reportapp.NewService(orderRepo, expenseRepo, reportCache, log)

	if err := handler.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	r := router.New(cfg, log)
	r.Register(handler.NewOrderHandler(orderService))
	r.Register(handler.NewExpenseHandler(expenseService))
	r.Register(handler.NewStaffHandler(staffService))
	r.Register(handler.NewPayrollHandler(settlementService))
	r.Register(handler.NewReportHandler(reportService, reportapp.NewExcelExporter()))
	r.Register(handler.NewAuditHandler(auditRepo))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Engine(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
