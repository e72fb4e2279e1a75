package app

import (
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/metrics"
	"github.com/saradorri/backoffice/internal/usecase/activity"
	"github.com/saradorri/backoffice/internal/usecase/agent"
	"github.com/saradorri/backoffice/internal/usecase/catalog"
	"github.com/saradorri/backoffice/internal/usecase/dashboard"
	"github.com/saradorri/backoffice/internal/usecase/provisioning"
	"github.com/saradorri/backoffice/internal/usecase/user"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// UseCaseDeps are the inputs shared by the use case constructors
type UseCaseDeps struct {
	fx.In

	Users        domain.UserRepository
	Roles        domain.RoleRepository
	Games        domain.GameRepository
	GameAccounts domain.GameAccountRepository
	Commissions  domain.CommissionRepository
	SubAccounts  domain.SubAccountRepository
	ActivityLogs domain.ActivityLogRepository
	JWT          auth.JWTService
	Hasher       auth.PasswordHasher
	Platform     domain.PlatformService
	Logger       *logger.Logger
}

// UseCases are the business services exposed to the HTTP layer
type UseCases struct {
	fx.Out

	Auth       domain.AuthUseCase
	Agent      domain.AgentUseCase
	Dashboard  domain.DashboardUseCase
	Game       domain.GameUseCase
	Commission domain.CommissionUseCase
	SubAccount domain.SubAccountUseCase
	Activity   domain.ActivityUseCase
}

func (a *application) InitUseCases(d UseCaseDeps) UseCases {
	activityUC := activity.NewActivityUseCase(d.ActivityLogs, d.Logger)

	return UseCases{
		Auth:       user.NewUserUseCase(d.Users, d.Roles, d.JWT, d.Hasher, activityUC, d.Logger),
		Agent:      agent.NewAgentUseCase(d.Users, d.Roles, d.Hasher, activityUC, d.Logger),
		Dashboard:  dashboard.NewDashboardUseCase(d.Users, d.GameAccounts, d.Logger),
		Game:       catalog.NewGameUseCase(d.Games, d.Platform, activityUC, d.Logger),
		Commission: catalog.NewCommissionUseCase(d.Commissions, d.Logger),
		SubAccount: catalog.NewSubAccountUseCase(d.SubAccounts, d.Hasher, activityUC, d.Logger),
		Activity:   activityUC,
	}
}

func (a *application) InitProvisioningUseCase(
	users domain.UserRepository,
	games domain.GameRepository,
	accounts domain.GameAccountRepository,
	activityUC domain.ActivityUseCase,
	m *metrics.Metrics,
	db *gorm.DB,
	log *logger.Logger,
) domain.ProvisioningUseCase {
	return provisioning.NewProvisioningUseCase(users, games, accounts, activityUC, m, db, a.config.Provisioning, log)
}
