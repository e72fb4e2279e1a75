package app

import (
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/metrics"
	"github.com/saradorri/backoffice/internal/infrastructure/rbac"
	"golang.org/x/crypto/bcrypt"
)

func (a *application) InitJWTService() auth.JWTService {
	return auth.NewJWTService(&a.config.JWT)
}

func (a *application) InitPasswordHasher() auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.DefaultCost)
}

func (a *application) InitEnforcer() (rbac.Enforcer, error) {
	return rbac.NewEnforcer()
}

func (a *application) InitMetrics() *metrics.Metrics {
	return metrics.New()
}
