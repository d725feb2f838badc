package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/ecom/backend/docs"
	"github.com/ecom/backend/internal/account"
	"github.com/ecom/backend/internal/config"
	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/logx"
	"github.com/ecom/backend/internal/order"
	"github.com/ecom/backend/internal/product"
	"github.com/ecom/backend/internal/store"
)

// @title       Commerce API
// @version     1.0
// @description Relational backend for customers, accounts, products and orders.
// @BasePath    /
func main() {
	cfg := config.Load()
	log := logx.New(cfg.Env, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := store.Migrate(cfg.PostgresDSN, log); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	customers := customer.NewPGRepo(pool)
	accounts := account.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	orders := order.NewService(order.NewPGRepo(pool), customers, products)

	r := newRouter(log, customers, accounts, products, orders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("api listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
