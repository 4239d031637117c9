package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/api"
	"educonnect-backend/internal/assistant"
	"educonnect-backend/internal/billing"
	"educonnect-backend/internal/config"
	"educonnect-backend/internal/core"
	"educonnect-backend/internal/db"
	"educonnect-backend/internal/db/memstore"
	"educonnect-backend/internal/db/mongostore"
	"educonnect-backend/internal/middleware"
)

func main() {
	// --- 1. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	// --- 2. Initialize Logger (Zap) ---
	zapLogger, err := newLogger(appConfig.GinMode)
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)
	zapLogger.Info("Application configuration loaded successfully.", zap.String("storeDriver", appConfig.StoreDriver))

	// --- 3. Open the document store ---
	// A store that cannot be opened is logged and replaced by one that fails
	// every call, so the process keeps serving.
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := openStore(initCtx, appConfig, zapLogger)
	cancelInitCtx()
	if err != nil {
		zapLogger.Error("Failed to initialize document store; storage-backed endpoints will answer 500",
			zap.String("driver", appConfig.StoreDriver), zap.Error(err))
		store = db.NewUnavailableStore(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Warn("Failed to close document store", zap.Error(err))
		}
	}()

	// --- 4. External providers ---
	gateway := newPaymentGateway(appConfig, zapLogger)
	generator := newTextGenerator(appConfig, zapLogger)

	// --- 5. Initialize Services ---
	tokenService, err := core.NewTokenService(appConfig.AccessTokenSecret, appConfig.TokenTTL)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize TokenService", zap.Error(err))
	}
	auditService := core.NewAuditService(store.Audit)
	services := api.Services{
		Users:           core.NewUserService(store.Users, auditService),
		Classes:         core.NewClassService(store.Classes, store.Users, auditService),
		TeacherRequests: core.NewTeacherRequestService(store.TeacherRequests, auditService),
		Payments:        core.NewPaymentService(store.Classes, store.Payments, gateway),
		Feedback:        core.NewFeedbackService(store.Feedback),
		Prompts:         core.NewPromptService(generator),
		Tokens:          tokenService,
	}
	zapLogger.Info("Core services initialized successfully.")

	// --- 6. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if len(appConfig.AllowedOrigins()) > 0 {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.Strings("origins", appConfig.AllowedOrigins()))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URLS is empty. Browser clients will be rejected.")
	}

	api.SetupRoutes(router, appConfig, zapLogger, services)

	// --- 7. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 8. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	zapLogger.Info("Server exiting gracefully.")
}

func newLogger(ginMode string) (*zap.Logger, error) {
	if strings.ToLower(ginMode) == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// openStore selects the document store named by STORE_DRIVER.
func openStore(ctx context.Context, appConfig *config.Config, logger *zap.Logger) (*db.Store, error) {
	switch appConfig.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using the in-memory store; data is lost on restart.")
		return memstore.NewStore(memstore.Open()), nil
	case config.StoreMongo:
		return mongostore.Open(ctx, appConfig, logger)
	default:
		if appConfig.FirebaseProjectID == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID is required for the firestore store")
		}
		client, err := db.OpenFirestore(ctx, appConfig, logger)
		if err != nil {
			return nil, err
		}
		return db.NewFirestoreStore(client), nil
	}
}

func newPaymentGateway(appConfig *config.Config, logger *zap.Logger) core.PaymentGateway {
	gateway, err := billing.NewStripeGateway(appConfig.StripeSecretKey, appConfig.PaymentCurrency, nil)
	if err != nil {
		logger.Warn("Payment provider disabled", zap.Error(err))
		return billing.Disabled{}
	}
	return gateway
}

func newTextGenerator(appConfig *config.Config, logger *zap.Logger) core.TextGenerator {
	generator, err := assistant.NewGeminiGenerator(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel, "")
	if err != nil {
		logger.Warn("Prompt relay disabled", zap.Error(err))
		return assistant.Disabled{}
	}
	return generator
}
