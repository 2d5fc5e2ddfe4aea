package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	notificationUseCase "github.com/payless-tz/payment-reconciler/internal/domain/usecase/notification"
	paymentUseCase "github.com/payless-tz/payment-reconciler/internal/domain/usecase/payment"
	refundUseCase "github.com/payless-tz/payment-reconciler/internal/domain/usecase/refund"

	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/routes"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/database"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/logger"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/repository"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/sms"
	timeProvider "github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/time"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(conn.DB, appLogger)
	tokenRepo := repository.NewTokenRepository(conn.DB, appLogger)

	// SMS gateway client, injected into the notification use case
	smsClient := sms.NewClient(sms.Config{
		BaseURL:  cfg.SMS.BaseURL,
		APIKey:   cfg.SMS.APIKey,
		Password: cfg.SMS.Password,
		Sender:   cfg.SMS.Sender,
		Timeout:  cfg.SMS.Timeout,
	}, appLogger)

	// Initialize use cases
	paymentService := paymentUseCase.NewService(paymentRepo, tokenRepo, appLogger)
	refundService := refundUseCase.NewService(paymentRepo, tokenRepo, appLogger, cfg.Refund.ExcludePrefix)
	notificationService := notificationUseCase.NewService(
		smsClient,
		notificationUseCase.PhoneRules{
			CountryCode:      cfg.Phone.CountryCode,
			SubscriberDigits: cfg.Phone.SubscriberDigits,
		},
		tp,
		appLogger,
	)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	refundHandler := handler.NewRefundHandler(refundService, appLogger)
	smsHandler := handler.NewSMSHandler(notificationService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, tp)

	// Setup routes
	routes.SetupRoutes(router, cfg.Auth.JWTSecret, paymentHandler, refundHandler, smsHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or PR_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or PR_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or PR_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or PR_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or PR_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or PR_AUTH_JWT_SECRET environment variable)")
	}

	// SMS gateway configuration
	if cfg.SMS.BaseURL == "" {
		missingConfigs = append(missingConfigs, "sms.baseUrl (or PR_SMS_BASE_URL environment variable)")
	}

	if cfg.SMS.APIKey == "" {
		missingConfigs = append(missingConfigs, "sms.apiKey (or PR_SMS_API_KEY environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.SSLMode != "require" && cfg.Database.SSLMode != "verify-ca" && cfg.Database.SSLMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
