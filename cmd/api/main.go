// Package main is the entry point for the Dompetku API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dompetku/backend/config"
	"github.com/dompetku/backend/internal/application/usecase/analytics"
	"github.com/dompetku/backend/internal/application/usecase/debt"
	"github.com/dompetku/backend/internal/application/usecase/notification"
	"github.com/dompetku/backend/internal/application/usecase/profile"
	"github.com/dompetku/backend/internal/application/usecase/reconciliation"
	"github.com/dompetku/backend/internal/application/usecase/transaction"
	"github.com/dompetku/backend/internal/infra/db"
	"github.com/dompetku/backend/internal/infra/server/router"
	"github.com/dompetku/backend/internal/integration/adapters"
	"github.com/dompetku/backend/internal/integration/entrypoint/controller"
	"github.com/dompetku/backend/internal/integration/persistence"
	"github.com/dompetku/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Dompetku API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.TransactionModel{},
		&model.DebtModel{},
		&model.PaymentModel{},
		&model.NotificationModel{},
		&model.ProfileModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	debtRepo := persistence.NewDebtRepository(database.DB())
	notificationRepo := persistence.NewNotificationRepository(database.DB())
	profileRepo := persistence.NewProfileRepository(database.DB())

	// Create adapters
	sink := adapters.NewNotificationSink(notificationRepo)
	bridge := reconciliation.NewBridge(transactionRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, bridge, sink)
	addPaymentUseCase := debt.NewAddPaymentUseCase(debtRepo, bridge, sink)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo, bridge, sink)

	// Create analytics use cases
	balanceUseCase := analytics.NewGetBalanceUseCase(transactionRepo)
	budgetUseCase := analytics.NewGetBudgetUsageUseCase(transactionRepo, profileRepo)
	trendUseCase := analytics.NewGetTrendUseCase(transactionRepo)
	payoffUseCase := analytics.NewProjectPayoffUseCase(debtRepo)
	estimateUseCase := analytics.NewEstimateDebtPayoffUseCase(debtRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)
	debtController := controller.NewDebtController(
		listDebtsUseCase,
		getDebtUseCase,
		createDebtUseCase,
		addPaymentUseCase,
		deleteDebtUseCase,
	)
	dashboardController := controller.NewDashboardController(
		balanceUseCase,
		budgetUseCase,
		trendUseCase,
		payoffUseCase,
		estimateUseCase,
	)
	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markAllReadUseCase,
	)
	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	// Setup router
	r := router.NewRouter(
		healthController,
		transactionController,
		debtController,
		dashboardController,
		notificationController,
		profileController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
