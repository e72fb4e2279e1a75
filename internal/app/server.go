package app

import (
	"context"

	apphttp "github.com/saradorri/backoffice/internal/http"
	"github.com/saradorri/backoffice/internal/http/middleware"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/metrics"
	"github.com/saradorri/backoffice/internal/infrastructure/rbac"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	enforcer rbac.Enforcer,
	m *metrics.Metrics,
	h apphttp.Handlers,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *apphttp.Server {
	return apphttp.NewServer(a.config.Server, jwtService, enforcer, m, h, errorHandler, log)
}

// RegisterServer ties the HTTP server to the fx lifecycle
func (a *application) RegisterServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, server *apphttp.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server")
			err := server.Shutdown(ctx)
			// stdout does not support fsync on every platform
			_ = log.Sync()
			return err
		},
	})
}
