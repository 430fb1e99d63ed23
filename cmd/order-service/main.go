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

	"github.com/jcmexdev/order-registry/internal/legacy"
	"github.com/jcmexdev/order-registry/internal/order-service/domain"
	"github.com/jcmexdev/order-registry/internal/order-service/httpx"
	"github.com/jcmexdev/order-registry/internal/order-service/registry"
	"github.com/jcmexdev/order-registry/internal/pkg/config"
	"github.com/jcmexdev/order-registry/internal/pkg/metrics"
	"github.com/jcmexdev/order-registry/internal/pkg/telemetry"
)

func main() {
	cfg := loadConfig()
	telemetry.InitLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewRegistry()

	reg := registry.New()
	reg.Attach(metrics.NewObserver(m))
	reg.Attach(metrics.Instrument(m, registry.NewEmailNotifier(slog.Default())))

	seedDemoOrders(reg)

	handler := httpx.NewHandler(reg, m, 100)
	router := httpx.NewRouter(handler, m.Handler())

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		slog.Info("order service running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to serve", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}

func loadConfig() *config.Config {
	path := getEnv("ORDER_CONFIG", "")
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "path", path, "error", err)
		os.Exit(1)
	}
	return cfg
}

// seedDemoOrders registers the sample orders the service starts with: a
// plain order, a discounted one and an adapted legacy record.
func seedDemoOrders(reg *registry.Registry) {
	plain, err := domain.CreateOrder(1,
		domain.Customer{Name: "Alice"},
		[]domain.LineItem{{Name: "apple", UnitPrice: 1.2, Quantity: 10}},
		domain.StatusPending,
		domain.DiscountNone, 0,
	)
	if err != nil {
		slog.Error("failed to build demo order", "error", err)
		os.Exit(1)
	}

	discounted, err := domain.CreateOrder(2,
		domain.Customer{Name: "Bob"},
		[]domain.LineItem{
			{Name: "orange", UnitPrice: 0.8, Quantity: 3},
			{Name: "milk", UnitPrice: 1.5, Quantity: 2},
		},
		domain.StatusCompleted,
		domain.DiscountPercentage, 10,
	)
	if err != nil {
		slog.Error("failed to build demo order", "error", err)
		os.Exit(1)
	}

	adapted := legacy.NewOrderAdapter(legacy.Order{
		ID:     3,
		Client: "Initech",
		Products: []legacy.Product{
			{Price: 10, Quantity: 2},
			{Price: 5, Quantity: 3},
		},
	})

	for _, e := range []domain.Registrable{plain, discounted, adapted} {
		reg.Add(e)
		slog.Info("seeded order", "order_id", e.ID(), "customer", e.CustomerName(), "total", e.Total())
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
