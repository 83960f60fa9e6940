package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/setclassname/internal/config"
	"github.com/vango-dev/setclassname/internal/handlers"
	"github.com/vango-dev/setclassname/internal/prefs"
	"github.com/vango-dev/setclassname/internal/recipe"
	"github.com/vango-dev/setclassname/internal/service"
	"github.com/vango-dev/setclassname/pkg/classname"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the class playground server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Recipes
	set, err := recipe.Parse([]byte("components: {}"))
	if err != nil {
		return err
	}
	if cfg.RecipesPath != "" {
		if set, err = recipe.Load(cfg.RecipesPath); err != nil {
			return fmt.Errorf("failed to load recipes: %w", err)
		}
	}
	recipes := recipe.NewStore(set)
	if cfg.RecipesPath != "" && cfg.WatchRecipes {
		go func() {
			if err := recipe.Watch(ctx, cfg.RecipesPath, logger, recipes.Replace); err != nil {
				logger.Error("recipe watcher stopped", "error", err)
			}
		}()
	}

	// Preferences cookie
	prefStore, err := prefs.NewStore(cfg.PrefsSecret, cfg.PrefsMaxAge, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to create prefs store: %w", err)
	}

	// Resolver service
	reg := prometheus.NewRegistry()
	svc := service.New(logger, classname.WithObserver(service.NewMetrics(reg)))

	h := handlers.New(cfg.Resolver(), svc, recipes, prefStore, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.Router(h, reg, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"components", set.Len(),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
