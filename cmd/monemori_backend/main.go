package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cwsbrian/mone-mori-app/internal/core/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
	"github.com/cwsbrian/mone-mori-app/internal/handlers"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/middleware"
	"github.com/cwsbrian/mone-mori-app/internal/platform/config"
	"github.com/cwsbrian/mone-mori-app/internal/repositories/database/kvsqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := kvstore.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Store opened", slog.String("path", cfg.DBPath))

	if cfg.SeedOnStart {
		if err := store.InitializeIfEmpty(context.Background()); err != nil {
			logger.Error("Failed to seed store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := kvsqlite.NewRepositoryContainer(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
