package app

import (
	"context"

	"github.com/saradorri/backoffice/internal/infrastructure/database"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func (a *application) InitDatabase(lc fx.Lifecycle, log *logger.Logger) (*gorm.DB, error) {
	db, err := database.NewDatabase(&database.Config{
		DSN:             a.config.GetDSN(),
		MaxIdleConns:    a.config.Database.MaxIdleConns,
		MaxOpenConns:    a.config.Database.MaxOpenConns,
		ConnMaxLifetime: a.config.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			log.Info("Closing database connection")
			return db.Close()
		},
	})
	return db.GetDB(), nil
}
