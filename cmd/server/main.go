package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/synth"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

const (
	renderTimeout   = 45 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	jobsPool, err := infra.NewJobsPool(ctx, cfg.JobsDatabaseURL)
	if err != nil {
		slog.Warn("jobs DB not available, export log disabled", "error", err)
		jobsPool = nil
	}
	if jobsPool != nil {
		defer jobsPool.Close()
	}
	if err := migration.RunMigrations(ctx, jobsPool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	aiClient, closeAI, err := cfg.AIClient(ctx)
	if err != nil {
		slog.Error("ai provider setup failed", "provider", cfg.AIProvider, "error", err)
		os.Exit(1)
	}
	defer closeAI()

	opts := []usecase.Option{
		usecase.WithSynthesizer(synth.New(synth.WithYearsOfExperience(cfg.YearsOfExperience))),
		usecase.WithRenderer(infra.NewChromedpRenderer(cfg.ChromePath, renderTimeout)),
		usecase.WithRenderRetry(cfg.RenderAttempts, time.Second),
		usecase.WithJobsRepo(repo.NewJobsRepo(jobsPool)),
	}
	if aiClient != nil {
		opts = append(opts, usecase.WithAI(aiClient))
	}
	processor := usecase.NewProcessor(opts...)

	app := httpadapter.NewApp(httpadapter.NewHandler(processor), httpadapter.AppOptions{
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		BodyLimit:          10 * 1024 * 1024,
	})

	go func() {
		slog.Info("starting resume-builder", "port", cfg.Port, "ai_provider", cfg.AIProvider, "job_log", jobsPool != nil)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
