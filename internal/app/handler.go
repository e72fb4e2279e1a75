package app

import (
	"github.com/saradorri/backoffice/internal/domain"
	apphttp "github.com/saradorri/backoffice/internal/http"
	"github.com/saradorri/backoffice/internal/http/handlers"
	"github.com/saradorri/backoffice/internal/http/middleware"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/fx"
)

// HandlerDeps are the use cases behind the route handlers
type HandlerDeps struct {
	fx.In

	Auth         domain.AuthUseCase
	Agent        domain.AgentUseCase
	Provisioning domain.ProvisioningUseCase
	Dashboard    domain.DashboardUseCase
	Game         domain.GameUseCase
	Commission   domain.CommissionUseCase
	SubAccount   domain.SubAccountUseCase
	Activity     domain.ActivityUseCase
	Logger       *logger.Logger
}

func (a *application) InitHandlers(d HandlerDeps) apphttp.Handlers {
	return apphttp.Handlers{
		User:      handlers.NewUserHandler(d.Auth, d.Logger),
		Agent:     handlers.NewAgentHandler(d.Agent),
		Dashboard: handlers.NewDashboardHandler(d.Provisioning, d.Dashboard, d.Logger),
		Catalog:   handlers.NewCatalogHandler(d.Game, d.Commission, d.SubAccount),
		Activity:  handlers.NewActivityHandler(d.Activity),
	}
}

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
