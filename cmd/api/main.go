package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/core/clock"
	"order-tracker/internal/core/config"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/core/server"
	noticeadapter "order-tracker/internal/features/notices/adapters"
	noticehandler "order-tracker/internal/features/notices/handler"
	noticeservice "order-tracker/internal/features/notices/service"
	orderadapter "order-tracker/internal/features/orders/adapters"
	orderhandler "order-tracker/internal/features/orders/handler"
	"order-tracker/internal/features/orders/ports"
	orderservice "order-tracker/internal/features/orders/service"
	trackinghandler "order-tracker/internal/features/tracking/handler"
	trackingservice "order-tracker/internal/features/tracking/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Order Tracker API
// @version 1.0
// @description Delivery tracking pages, tracking views and a live ETA stream for meal-kit orders.
// @contact.name API Support
// @contact.email support@order-tracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	configDir := pflag.String("config-dir", ".", "directory containing the .env file")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("order_store", cfg.Storage.OrderStore),
		zap.String("cache_driver", cfg.Storage.CacheDriver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cache.New(cfg.Storage)
	if err != nil {
		l.Fatal("Failed to init cache", zap.Error(err))
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		l.Fatal("Cache Health Check Failed", zap.Error(err))
	}

	orderRepo, err := newOrderRepository(ctx, cfg, store)
	if err != nil {
		l.Fatal("Failed to load orders", zap.Error(err))
	}

	loc, err := cfg.Tracking.Location()
	if err != nil {
		l.Fatal("Invalid delivery timezone", zap.Error(err))
	}
	clk := clock.RealClock{Location: loc}

	// Orders
	orderSvc := orderservice.NewOrderService(orderRepo)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Notices
	noticeSvc := noticeservice.NewNoticeService(noticeadapter.NewCacheNoticeRepository(store), clk)
	noticeHdl := noticehandler.NewNoticeHandler(noticeSvc)

	// Tracking
	trackingSvc := trackingservice.NewTrackingService(orderSvc, noticeSvc, clk, cfg.Tracking.RefreshInterval)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc, ctx, cfg.Tracking.MaxStreamDuration)

	srv := server.New(cfg, store)

	// Register Routes
	srv.App.Get("/", trackingHdl.Home)
	srv.App.Get("/order-tracking/:orderId/eta/stream", trackingHdl.StreamETA)
	srv.App.Get("/order-tracking/:orderId?", trackingHdl.TrackingPage)
	srv.App.Get("/api/orders/:id?", orderHdl.GetOrder)
	srv.App.Get("/api/tracking/:id?", trackingHdl.GetTrackingView)
	srv.App.Get("/api/notice", noticeHdl.GetNotice)
	srv.App.Post("/api/notice", noticeHdl.SetNotice)
	srv.App.Delete("/api/notice", noticeHdl.RemoveNotice)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case <-ctx.Done():
		if err := srv.Shutdown(shutdownTimeout); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}
}

// newOrderRepository builds the configured order store over the sample dataset.
func newOrderRepository(ctx context.Context, cfg *config.AppConfig, store cache.Cache) (ports.OrderRepository, error) {
	orders := orderadapter.DefaultOrders()

	if cfg.Storage.OrderStore == config.OrderStoreCache {
		repo := orderadapter.NewCacheRepository(store)
		if err := repo.Seed(ctx, orders); err != nil {
			return nil, err
		}
		logger.Get().Info("Orders seeded into cache", zap.Int("count", len(orders)))
		return repo, nil
	}

	return orderadapter.NewMemoryRepository(orders)
}
