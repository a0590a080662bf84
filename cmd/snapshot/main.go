package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-tracker/internal/core/httpclient"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/snapshot"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	baseURL := pflag.String("base-url", "http://localhost:8080", "address of a running order-tracker")
	orderID := pflag.String("order", "ORD-2024-001234", "order to capture")
	out := pflag.String("out", "", "PNG output path (default <order>.png)")
	timeout := pflag.Duration("timeout", 30*time.Second, "overall capture timeout")
	width := pflag.Int("width", 1280, "viewport width")
	height := pflag.Int("height", 800, "viewport height")
	logLevel := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	if err := logger.Init("development", *logLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	if *out == "" {
		*out = fmt.Sprintf("%s.png", *orderID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	capturer := snapshot.NewCapturer(httpclient.NewClient(5 * time.Second))
	result, err := capturer.Capture(ctx, snapshot.Options{
		BaseURL: *baseURL,
		OrderID: *orderID,
		Timeout: *timeout,
		Width:   *width,
		Height:  *height,
	})
	if err != nil {
		l.Fatal("Snapshot failed", zap.String("order_id", *orderID), zap.Error(err))
	}

	if err := os.WriteFile(*out, result.PNG, 0o644); err != nil {
		l.Fatal("Failed to write snapshot", zap.String("path", *out), zap.Error(err))
	}

	l.Info("Snapshot written",
		zap.String("path", *out),
		zap.String("url", result.URL),
		zap.String("eta", result.ETA),
	)
}
