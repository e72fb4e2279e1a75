package app

import (
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Repositories is every store the use cases depend on
type Repositories struct {
	fx.Out

	Users        domain.UserRepository
	Roles        domain.RoleRepository
	Games        domain.GameRepository
	GameAccounts domain.GameAccountRepository
	Commissions  domain.CommissionRepository
	SubAccounts  domain.SubAccountRepository
	ActivityLogs domain.ActivityLogRepository
}

func (a *application) InitRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:        repository.NewUserRepository(db),
		Roles:        repository.NewRoleRepository(db),
		Games:        repository.NewGameRepository(db),
		GameAccounts: repository.NewGameAccountRepository(db),
		Commissions:  repository.NewCommissionRepository(db),
		SubAccounts:  repository.NewSubAccountRepository(db),
		ActivityLogs: repository.NewActivityLogRepository(db),
	}
}
