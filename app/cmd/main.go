package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lakenine-studio/app/config"
	"lakenine-studio/app/usecase"
	"lakenine-studio/internal/infrastructure/deploy"
	"lakenine-studio/internal/infrastructure/images"
	"lakenine-studio/internal/infrastructure/llm"
	"lakenine-studio/internal/infrastructure/store/filesystem"
	"lakenine-studio/internal/infrastructure/store/mongodb"
	"lakenine-studio/internal/infrastructure/transport"
	"lakenine-studio/internal/repair"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Error("mongo connect failed", "error", err)
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Error("mongo ping failed", "error", err)
		os.Exit(1)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	chatRepo, err := mongodb.NewChatRepository(db, logger.With("component", "chat_repo"))
	if err != nil {
		logger.Error("chat repository init failed", "error", err)
		os.Exit(1)
	}
	generationRepo, err := mongodb.NewGenerationRepository(db, logger.With("component", "generation_repo"))
	if err != nil {
		logger.Error("generation repository init failed", "error", err)
		os.Exit(1)
	}
	workspace, err := filesystem.NewWorkspace(cfg.Workspace.BasePath, logger.With("component", "workspace"))
	if err != nil {
		logger.Error("workspace init failed", "error", err)
		os.Exit(1)
	}

	pixabay := images.NewPixabayClient(cfg.Pixabay.APIKey, cfg.Pixabay.BaseURL, cfg.Pixabay.Timeout, logger.With("component", "pixabay"))
	resolver := images.NewResolver(pixabay, cfg.Pixabay.RateInterval, logger.With("component", "resolver"))
	repairEngine := repair.NewEngine(resolver, logger.With("component", "repair"))

	modelClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens, cfg.LLM.Timeout, logger.With("component", "llm"))
	vercel := deploy.NewVercelClient(cfg.Vercel.Token, cfg.Vercel.BaseURL, cfg.Vercel.Timeout, logger.With("component", "vercel"))

	generator := usecase.NewGeneratorService(modelClient, repairEngine, generationRepo, workspace, cfg.LLM.Timeout, logger.With("component", "generator"))
	chatService := usecase.NewChatService(chatRepo, logger.With("component", "chats"))
	deployService := usecase.NewDeployService(vercel, logger.With("component", "deploy"))

	handler := transport.NewStudioHandler(generator, chatService, deployService, logger.With("component", "http"))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	server := &http.Server{
		Addr:         cfg.HTTPServer.Host + ":" + cfg.HTTPServer.Port,
		Handler:      cors(router),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	metricsServer := &http.Server{
		Addr:    ":" + cfg.Metrics.Port,
		Handler: promhttp.Handler(),
	}
	go func() {
		logger.Info("metrics server listening", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongo disconnect failed", "error", err)
	}
	logger.Info("shutdown complete")
}

func loadConfig() config.Config {
	return config.Config{
		HTTPServer: config.HTTPServerConfig{
			Host:            getEnv("HTTP_HOST", "0.0.0.0"),
			Port:            getEnv("HTTP_PORT", "8080"),
			ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 180*time.Second),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Metrics: config.MetricsConfig{
			Port: getEnv("METRICS_PORT", "2112"),
		},
		LLM: config.LLMConfig{
			BaseURL:   getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			APIKey:    getEnv("LLM_API_KEY", ""),
			Model:     getEnv("LLM_MODEL", "gpt-4o"),
			MaxTokens: getInt("LLM_MAX_TOKENS", 16000),
			Timeout:   getDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Pixabay: config.PixabayConfig{
			APIKey:       getEnv("PIXABAY_API_KEY", ""),
			BaseURL:      getEnv("PIXABAY_BASE_URL", ""),
			Timeout:      getDuration("PIXABAY_TIMEOUT", 15*time.Second),
			RateInterval: getDuration("PIXABAY_RATE_INTERVAL", 150*time.Millisecond),
		},
		Mongo: config.MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "lakenine"),
			Timeout:  getDuration("MONGO_TIMEOUT", 10*time.Second),
		},
		Workspace: config.WorkspaceConfig{
			BasePath: getEnv("WORKSPACE_DIR", "./workspace"),
		},
		Vercel: config.VercelConfig{
			Token:   getEnv("VERCEL_TOKEN", ""),
			BaseURL: getEnv("VERCEL_BASE_URL", ""),
			Timeout: getDuration("VERCEL_TIMEOUT", 60*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
