package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dialplan_backend/internal/audit"
	"dialplan_backend/internal/dialing"
	"dialplan_backend/internal/events"
	apphttp "dialplan_backend/internal/http"
	"dialplan_backend/internal/http/router"
	"dialplan_backend/platform/config"
	"dialplan_backend/platform/logger"
	"dialplan_backend/platform/phone"
	"dialplan_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	val := validator.New()
	bus := events.NewInMemoryBus(log)
	parser := phone.NewParser()

	audit.NewSubscriber(log).Register(bus)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	dialingModule, err := dialing.NewModule(cfg, parser, bus, val, log)
	if err != nil {
		log.Error("failed to initialize dialing module", "error", err)
		panic("failed to initialize dialing module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: bus,
		Modules: []apphttp.Module{
			dialingModule,
		},
	}
	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
}
