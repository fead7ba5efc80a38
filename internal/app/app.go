package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/ParaplanBooker/internal/config"
	"github.com/stpnv0/ParaplanBooker/internal/handler"
	"github.com/stpnv0/ParaplanBooker/internal/middleware"
	"github.com/stpnv0/ParaplanBooker/internal/notification"
	"github.com/stpnv0/ParaplanBooker/internal/router"
	"github.com/stpnv0/ParaplanBooker/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	httpServer     *http.Server
	bookingService *service.BookingService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ParaplanBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("booking location: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.bookingService = service.NewBookingService(n, loc, a.log)

	h := handler.NewHandler(a.bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	// Уведомления досылаем, даже если сервер не успел закрыться.
	shutdownErr := a.httpServer.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "HTTP server shutdown failed",
			logger.String("error", shutdownErr.Error()),
		)
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	drainCtx, cancelDrain := context.WithTimeout(
		context.Background(),
		a.cfg.Dispatch.DrainTimeout,
	)
	defer cancelDrain()

	if err := a.bookingService.Drain(drainCtx); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "pending notifications abandoned",
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "pending notifications delivered")
	}

	if shutdownErr != nil {
		return fmt.Errorf("http server shutdown: %w", shutdownErr)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
