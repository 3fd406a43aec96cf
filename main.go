package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/svmhdvn/private-channel-bot/handler"
)

func checkEnv() {
	requiredEnv := []string{
		"SLACK_BOT_TOKEN",
		"SLACK_APP_TOKEN",
	}
	for _, env := range requiredEnv {
		if os.Getenv(env) == "" {
			slog.Error("required environment variable not set", slog.String("env", env))
			os.Exit(1)
		}
	}
}

func main() {
	checkEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := handler.NewHandler()
	if err != nil {
		slog.Error("NewHandler failed", slog.Any("err", err))
		os.Exit(1)
	}

	// 期限切れチャンネルの監視
	h.StartExpiryMonitor(ctx)

	bind := ":3000"
	if os.Getenv("LISTEN_SOCKET") != "" {
		bind = os.Getenv("LISTEN_SOCKET")
	}
	srv := &http.Server{
		Addr:              bind,
		Handler:           newMetricsMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("Server listening", slog.String("bind", bind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", slog.Any("err", err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := h.Handle(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Server failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func newMetricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
