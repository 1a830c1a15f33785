package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/AbdelrahmanBayoumi/library-api/internal/api/http"
	"github.com/AbdelrahmanBayoumi/library-api/internal/config"
	"github.com/AbdelrahmanBayoumi/library-api/internal/logger"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository/postgres"
	"github.com/AbdelrahmanBayoumi/library-api/internal/security"
	"github.com/AbdelrahmanBayoumi/library-api/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)

	// Initialize Services
	authSvc := service.NewAuthService(cfg.Auth.Username, cfg.Auth.PasswordHash, tokenManager)
	bookSvc := service.NewBookService(store.BookRepository)
	borrowerSvc := service.NewBorrowerService(store.BorrowerRepository)
	loanSvc := service.NewLoanService(
		store.LoanRepository,
		store.BookRepository,
		store.BorrowerRepository,
		cfg.Loans.LoanPeriodDays,
		cfg.Loans.RestockOnReturn,
	)
	reportSvc := service.NewReportService(store.LoanRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc),
		Books:     httpapi.NewBookHandler(bookSvc),
		Borrowers: httpapi.NewBorrowerHandler(borrowerSvc),
		Loans:     httpapi.NewLoanHandler(loanSvc),
		Reports:   httpapi.NewReportHandler(reportSvc),
	}
	router := httpapi.NewRouter(handlers, httpapi.NewAuthenticator(tokenManager))

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
