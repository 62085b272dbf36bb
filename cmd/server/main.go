package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lfposadac/backclashflow/internal/config"
	"github.com/lfposadac/backclashflow/internal/notification"
	"github.com/lfposadac/backclashflow/internal/server"
	"github.com/lfposadac/backclashflow/pkg/logger"
	"github.com/lfposadac/backclashflow/pkg/mailer/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, server.RequestIDExtractor).
		With(slog.String("app", "backclashflow"))

	sender := resend.New(cfg.Resend)
	svc := notification.NewService(sender, log)
	router := server.NewRouter(cfg, svc, log)

	if err := server.Run(context.Background(), router, cfg.Port, log); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
