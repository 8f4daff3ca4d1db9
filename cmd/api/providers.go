package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"parpass-api/internal/models/config"
	"parpass-api/internal/notify"
	"parpass-api/internal/service"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := database.NewPostgres(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing database pool")
			return db.Close()
		},
	})
	return db, nil
}

func newNotifier(cfg *config.Config, logger *zap.Logger) (service.CheckInNotifier, error) {
	return notify.NewCheckInNotifier(cfg.Bot, logger)
}

func newHTTPServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// registerHTTPServer binds the listener on start so a taken port fails
// startup. On stop it drains in-flight requests until the fx stop timeout.
func registerHTTPServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *http.Server, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			logger.Info("🚀 ParPass API listening",
				zap.String("addr", srv.Addr),
				zap.String("environment", cfg.Environment),
			)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
					shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}
