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

	"github.com/GregMSThompson/gatabank/internal/bootstrap"
	"github.com/GregMSThompson/gatabank/internal/config"
	"github.com/GregMSThompson/gatabank/internal/handlers"
	"github.com/GregMSThompson/gatabank/internal/middleware"
	"github.com/GregMSThompson/gatabank/internal/response"
	"github.com/GregMSThompson/gatabank/internal/router"
	"github.com/GregMSThompson/gatabank/internal/services"
	"github.com/GregMSThompson/gatabank/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	exitOnError("migration failed", store.Migrate(ctx, bs.DB), bs.Log)

	// stores
	gstore := store.NewGeographyStore(bs.DB)
	bstore := store.NewBankStore(bs.DB)
	cstore := store.NewCardStore(bs.DB)
	ustore := store.NewUserStore(bs.DB)

	// services
	gserv := services.NewGeographyService(gstore)
	bserv := services.NewBankService(bstore)
	cserv := services.NewCardService(cstore)
	userv := services.NewUserService(ustore, gstore)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.GeographySvc = gserv
	deps.BankSvc = bserv
	deps.CardSvc = cserv
	deps.UserSvc = userv
	deps.Ping = func(ctx context.Context) error { return store.Ping(ctx, bs.DB) }
	if bs.Firebase != nil {
		deps.Auth = middleware.NewMiddleware(bs.Firebase, userv, rh)
	} else {
		bs.Log.Warn("authentication disabled; write routes are open")
	}

	// router
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	case <-ctx.Done():
		bs.Log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			bs.Log.Error("graceful shutdown failed", "error", err)
		}
	}
}
