package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorlab/internal/app"
	"creatorlab/internal/config"
	"creatorlab/internal/logger"
	"creatorlab/internal/observability"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("started", "env", cfg.Env)

	ctx := context.Background()

	shutdownTracing := observability.InitTracing(ctx, log, observability.TracingConfig{
		ServiceName: "creatorlab",
		Environment: cfg.Env,
		Stdout:      cfg.OTelStdout,
	})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", "error", err)
	}
	a.OnClose(shutdownTracing)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		log.Info("endpoints",
			"rest", []string{
				"POST /v1/auth/session",
				"POST /v1/feedback",
				"POST /v1/ai/categories",
				"GET/POST /v1/contents",
				"GET /v1/contents/{id}",
				"POST /v1/contents/{id}/comments",
				"GET /v1/contents/{id}/community-summary",
				"GET /v1/authors/{name}/contents",
			},
			"ws", []string{"/v1/ws/feed", "/v1/ws/contents/{id}"},
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe failed", "error", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	a.Close(shutdownCtx)

	log.Info("server exited")
}
