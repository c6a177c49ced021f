package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"farm-advisor/internal/api"
	"farm-advisor/internal/api/handlers"
	"farm-advisor/internal/knowledge"
	"farm-advisor/internal/repository"
	"farm-advisor/internal/service"
	"farm-advisor/pkg/config"
	"farm-advisor/pkg/logger"
	"farm-advisor/pkg/sqlite"
)

const banner = `
  Farm Advisor - Offline Agricultural Guidance
  Ask farming questions in English or Hindi.
`

func main() {
	fmt.Print(banner)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Farm Advisor service")

	// Interaction log database
	db, err := sqlite.Open(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	interactionRepo := repository.NewInteractionRepository(db, appLogger)

	// Knowledge base: loaded once before serving, immutable afterwards.
	store := knowledge.Load(cfg.Knowledge.DataFile, appLogger)
	if !store.IsLoaded() {
		appLogger.Warn("Knowledge base is empty, all questions will resolve to not_found")
	}

	// Services
	advisorService := service.NewAdvisorService(store, interactionRepo, appLogger)
	speech := service.NewBrowserSpeech(appLogger)

	// Handlers
	advisorHandler := handlers.NewAdvisorHandler(advisorService, speech, appLogger)
	voiceHandler := handlers.NewVoiceHandler(speech, appLogger)

	// Setup router
	app := api.SetupRouter(advisorHandler, voiceHandler, cfg.Server.WebStaticDir, appLogger)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
