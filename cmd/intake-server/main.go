// cmd/intake-server/main.go
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

	"ayurveda-intake/internal/common/aws"
	"ayurveda-intake/internal/common/config"
	"ayurveda-intake/internal/common/genai"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/common/observability"
	"ayurveda-intake/internal/pipeline"
	"ayurveda-intake/internal/server"
	ts "ayurveda-intake/internal/workers/intake/translate-submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intake server...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
		zap.String("basePath", cfg.Server.BasePath),
		zap.String("mailProvider", cfg.Mail.Provider),
	)

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.JaegerEndpoint)
	defer obs.Shutdown()

	ctx := context.Background()

	// A missing key is reported per request, not at startup.
	var generator ts.Generator
	if cfg.GenAI.APIKey != "" {
		client, err := genai.NewClient(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
		if err != nil {
			zapLog.Fatal("genai client init failed", zap.Error(err))
		}
		generator = client
		zapLog.Info("GenAI client ready", zap.String("model", client.Model()))
	}

	var ses *aws.SESClient
	if cfg.Mail.Provider == config.MailProviderSES {
		ses, err = aws.NewSESClient(ctx, cfg.Mail.SES.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		zapLog.Info("SES client ready", zap.String("region", cfg.Mail.SES.Region))
	}

	// Keep a nil *SESClient out of the interface.
	var connector pipeline.Connector
	if ses != nil {
		connector = pipeline.NewGoogleConnector(cfg, ses)
	} else {
		connector = pipeline.NewGoogleConnector(cfg, nil)
	}

	intake := pipeline.New(pipeline.Dependencies{
		Config:        cfg,
		Connector:     connector,
		Generator:     generator,
		Logger:        log,
		Observability: obs,
	})

	router := server.NewRouter(server.Dependencies{
		Config:    cfg.Server,
		Submitter: intake,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Intake server stopped gracefully")
}
