package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/config"
	apphttp "comercialsoares.com/app/internal/http"
	"comercialsoares.com/app/internal/http/handlers"
	"comercialsoares.com/app/internal/http/session"
	"comercialsoares.com/app/internal/mailer"
	"comercialsoares.com/app/internal/modules/auth"
	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/receipt"
	"comercialsoares.com/app/internal/storage"
	"comercialsoares.com/app/internal/store"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	// the frontend expects plain JSON numbers for prices and totals
	decimal.MarshalJSONWithoutQuotes = true

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	backend, err := store.FromConfig(cfg.Store)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	logger.Info("store_ready", "driver", backend.Driver)

	ctx := context.Background()
	snap, err := backend.Persistence.FetchAll(ctx)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}

	orderRepo := orders.NewRepo()
	orderRepo.Load(snap.Orders)
	customerRepo := customers.NewRepo()
	customerRepo.Load(snap.Customers)
	logger.Info("data_loaded", "orders", orderRepo.Len(), "customers", len(snap.Customers))

	queue := store.NewQueue(backend.Persistence, logger)

	archive, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to init receipt archive: %v", err)
	}
	logger.Info("archive_ready", "driver", archive.Driver)

	gen := receipt.NewGenerator(cfg.Company)
	emitter := receipt.NewEmitter(gen, archive.Storage, logger)

	var mail mailer.Service
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("smtp_not_configured", "mailer", "mock")
		mail = &mailer.Mock{}
	}

	orderSvc := orders.NewService(orderRepo, queue, emitter, logger)
	codec := session.NewCodec(cfg.Auth.CookieSecret, cfg.Auth.CookieName, cfg.Auth.SecureCookie, cfg.Auth.SessionTTL)

	r := apphttp.NewRouter(cfg, codec, apphttp.Handlers{
		Auth:      handlers.NewAuthHandler(auth.NewChecker(cfg.Auth), codec),
		Orders:    handlers.NewOrdersHandler(orderSvc, customerRepo),
		Receipts:  handlers.NewReceiptsHandler(orderSvc, gen, mail, cfg.SMTP),
		Customers: handlers.NewCustomersHandler(customerRepo, orderSvc, queue),
		Dashboard: handlers.NewDashboardHandler(orderSvc),
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", cfg.Server.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "err", err)
	}

	// flush pending writes before exit
	queue.Close()
	logger.Info("stopped")
}
