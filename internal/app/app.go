package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/backoffice/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Agent Back-Office Service...")

	path := flag.String("e", "./config", "config file directory")
	flag.Parse()

	if err := a.loadConfig(*path); err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(a.Options(), fx.Invoke(a.RegisterServer))
	app.Run()
}

// Options returns the dependency graph without starting anything
func (a *application) Options() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitRepositories,
			a.InitJWTService,
			a.InitPasswordHasher,
			a.InitEnforcer,
			a.InitMetrics,
			a.InitPlatformService,
			a.InitUseCases,
			a.InitProvisioningUseCase,
			a.InitHandlers,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
	)
}
