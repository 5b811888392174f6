package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-api/internal/config"
	"ecommerce-api/internal/db"
	"ecommerce-api/internal/httpapi"
	"ecommerce-api/internal/idempotency"
	"ecommerce-api/internal/inventory"
	"ecommerce-api/internal/metrics"
	"ecommerce-api/internal/orders"
	"ecommerce-api/internal/payments"
	"ecommerce-api/internal/seed"
	"ecommerce-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run serves until SIGINT or SIGTERM.
func run() error {
	cfg := config.Load()

	var (
		addr      = flag.String("addr", cfg.Addr, "HTTP listen address")
		migrate   = flag.Bool("migrate", true, "apply the database schema on start")
		seedDemo  = flag.Bool("seed", false, "insert a demo catalog when tables are empty")
		customers = flag.Int("seed-customers", 50, "customers to keep when seeding")
		products  = flag.Int("seed-products", 100, "products to keep when seeding")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gdb, err := db.Open(db.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer db.Close(gdb)

	if *migrate {
		if err := db.EnsureSchema(gdb); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	if *seedDemo {
		start := time.Now()
		sum, err := seed.Catalog(context.Background(), gdb, seed.Config{
			Customers: *customers,
			Products:  *products,
		})
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Printf("catalog ready (+%d customers, +%d products) in %s", sum.Customers, sum.Products, time.Since(start))
	}

	idem, err := idempotency.Open(cfg.IdempotencyDBPath)
	if err != nil {
		return fmt.Errorf("failed to open idempotency store: %w", err)
	}
	defer idem.Close()

	if n, err := idem.Prune(time.Now().Add(-cfg.IdempotencyTTL)); err != nil {
		log.Printf("Warning: failed to prune idempotency keys: %v", err)
	} else if n > 0 {
		log.Printf("pruned %d expired idempotency keys", n)
	}

	st := store.New(gdb)
	m := metrics.New()
	orderSvc := orders.NewService(st, inventory.NewChecker(st), orders.WithMetrics(m), orders.WithLogger(logger))
	paymentSvc := payments.NewService(st, payments.WithMetrics(m), payments.WithLogger(logger))

	h := httpapi.New(st, orderSvc, paymentSvc, m, logger)

	server := &http.Server{
		Addr:         *addr,
		Handler:      httpapi.NewRouter(h, idem, cfg.RequestTimeout),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited properly")
	return nil
}
