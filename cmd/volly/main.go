package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"volly/internal/config"
	"volly/internal/observability/logging"
	"volly/internal/observability/metrics"
	obsmw "volly/internal/observability/middleware"
	"volly/internal/server"
	"volly/internal/service"
	impl "volly/internal/service/impl"
	"volly/internal/sms"
	"volly/internal/store"
	httpx "volly/internal/transport/http"
	"volly/pkg/db"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "volly",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	cfg := config.Load()
	metrics.MustRegister("volly")

	gdb, err := db.OpenGorm(db.Config{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	if err := st.Migrate(); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	var notifier service.Notifier = sms.Nop{}
	if cfg.TwilioEnabled() {
		notifier = sms.NewTwilioClient(sms.Config{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			FromNumber: cfg.TwilioFromNumber,
		})
	} else {
		logger.Warn("twilio not configured, outbound sms disabled")
	}

	pw := impl.NewPasswordServiceBcrypt()
	ts := impl.NewTokenServiceHS256([]byte(cfg.SigningKey))
	auth := impl.NewAuthServiceImpl(st, pw, ts, notifier)
	rel := impl.NewRelationshipServiceImpl(st, notifier)
	subs := impl.NewSubscriptionServiceImpl(st)
	sweeper := impl.NewSweepServiceImpl(st)

	router := httpx.NewRouter(auth, rel, subs, httpx.RouterConfig{CORSOrigins: cfg.CORSOrigins})
	handler := obsmw.WithRequestAndTrace(router)

	srv := server.New(cfg.Addr, handler)
	serveErr, err := srv.Start()
	if err != nil {
		logger.Error("server start", "error", err)
		os.Exit(1)
	}
	logger.Info("volly listening", "addr", srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sweep once at startup, then on the interval. Reconcile runs in the same
	// pass since both assume exclusive access.
	go runSweeper(ctx, sweeper, cfg.SweepInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case err, ok := <-serveErr:
		if ok && err != nil {
			logger.Error("server error", "error", err)
		}
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("server stop", "error", err)
		os.Exit(1)
	}
}

func runSweeper(ctx context.Context, sweeper service.SweepService, interval time.Duration) {
	sweep := func() {
		res, err := sweeper.RemoveExpired(ctx)
		if err != nil {
			slog.Error("sweep failed", "error", err)
		} else {
			slog.Info("sweep complete",
				"scanned", res.Scanned,
				"expired", res.ExpiredAccounts,
				"volunteers_removed", res.RemovedVolunteers,
			)
		}
		repaired, err := sweeper.Reconcile(ctx)
		if err != nil {
			slog.Error("reconcile failed", "error", err)
		} else if repaired > 0 {
			slog.Warn("reconcile repaired records", "count", repaired)
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
