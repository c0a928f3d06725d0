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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/waveguard/risk-engine/internal/api"
	"github.com/waveguard/risk-engine/internal/assess"
	"github.com/waveguard/risk-engine/internal/config"
	"github.com/waveguard/risk-engine/internal/fetch"
	"github.com/waveguard/risk-engine/internal/logging"
	"github.com/waveguard/risk-engine/internal/mlclient"
	"github.com/waveguard/risk-engine/internal/observability"
	"github.com/waveguard/risk-engine/internal/risk"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	seismic := fetch.NewSeismicClient(cfg.Seismic.BaseURL, cfg.Seismic.Timeout)
	weather := fetch.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout, cfg.Weather.SyntheticFallback)
	if cfg.Weather.SyntheticFallback {
		slog.Warn("synthetic weather fallback enabled; degraded snapshots will be served flagged")
	}

	var predictor risk.Predictor
	if cfg.Model.URL != "" {
		client := mlclient.New(cfg.Model.URL, cfg.Model.Timeout)
		if err := client.Health(context.Background()); err != nil {
			slog.Warn("tsunami model service unreachable at startup, heuristic fallback will apply", "error", err)
		}
		predictor = client
	} else {
		slog.Info("no model service configured, tsunami classification uses heuristic only")
	}

	classifier := risk.NewTsunamiClassifier(predictor)
	tsunamiAssessor := assess.NewTsunamiAssessor(seismic, classifier, cfg.Worker.Count, clock, metrics)
	cycloneAssessor := assess.NewCycloneAssessor(weather, clock, metrics)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimitRPS))

	handler := api.NewHandler(tsunamiAssessor, cycloneAssessor)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
