package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ArchitSaxena349/credit-approval-system/internal/config"
	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
	"github.com/ArchitSaxena349/credit-approval-system/internal/http/handlers"
	"github.com/ArchitSaxena349/credit-approval-system/internal/observability"
	"github.com/ArchitSaxena349/credit-approval-system/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	client, err := creditapi.NewClient(cfg.CreditAPIBaseURL, cfg.CreditAPITimeout)
	if err != nil {
		logger.Error("invalid credit api configuration", "err", err)
		os.Exit(1)
	}

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Pinger:      client,
		Dashboard:   handlers.NewDashboardHandler(client),
		Register:    handlers.NewRegisterHandler(client),
		Eligibility: handlers.NewEligibilityHandler(client),
		Loan:        handlers.NewLoanHandler(client),
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("web frontend starting", "addr", cfg.Addr(), "credit_api", cfg.CreditAPIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("web frontend stopped")
}
