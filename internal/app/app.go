package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/Activities/internal/client"
	"github.com/stpnv0/Activities/internal/config"
	"github.com/stpnv0/Activities/internal/handler"
	"github.com/stpnv0/Activities/internal/middleware"
	"github.com/stpnv0/Activities/internal/repository"
	"github.com/stpnv0/Activities/internal/router"
	"github.com/stpnv0/Activities/internal/service"
	"github.com/stpnv0/Activities/internal/view"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	apiClient  *client.Client
	sessions   *handler.Sessions
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Activities",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.initServices()

	return app, nil
}

func (a *App) initServices() {
	activityRepo := repository.NewActivityRepo(repository.DefaultActivities())
	activityService := service.NewActivityService(activityRepo, a.log)

	a.apiClient = client.New(a.cfg.API.BaseURL, a.cfg.API.Timeout)
	a.sessions = handler.NewSessions(a.newPage, a.cfg.View.SessionIdle)

	h := handler.NewHandler(activityService)
	p := handler.NewPageHandler(a.sessions)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		p,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

// newPage gives a visitor its own document and controller.
func (a *App) newPage() (handler.ViewController, handler.PageState, func()) {
	page := view.NewDocument()
	controller := view.NewController(a.apiClient, page, a.cfg.View.MessageTTL, a.log)
	return controller, page, controller.Close
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("api_base_url", a.cfg.API.BaseURL),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.warmUp(ctx)

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// warmUp waits for the API the page talks to and reports what it serves.
func (a *App) warmUp(ctx context.Context) {
	strategy := retry.Strategy{
		Attempts: a.cfg.Probe.Attempts,
		Delay:    a.cfg.Probe.Delay,
		Backoff:  2,
	}

	err := retry.DoContext(ctx, strategy, func() error {
		return a.apiClient.Ping(ctx)
	})
	if err != nil {
		a.log.Warn("activities API is not reachable",
			logger.String("api_base_url", a.cfg.API.BaseURL),
			logger.String("error", err.Error()),
		)
		return
	}

	catalog, err := a.apiClient.FetchCatalog(ctx)
	if err != nil {
		a.log.Warn("failed to fetch activities catalog",
			logger.String("error", err.Error()),
		)
		return
	}
	a.log.Info("activities API is ready",
		logger.Int("activities", catalog.Len()),
	)
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.sessions.Close()

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
