package app

import (
	"testing"

	"github.com/saradorri/backoffice/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraphIsComplete(t *testing.T) {
	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: "graph-test"},
		Database: config.DatabaseConfig{DSN: "postgres://localhost/backoffice"},
	}
	cfg.ApplyDefaults()

	a := &application{config: cfg}
	require.NoError(t, fx.ValidateApp(a.Options(), fx.Invoke(a.RegisterServer)))
}
