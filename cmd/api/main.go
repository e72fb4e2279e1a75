// Package main Agent Back-Office API
//
// Multi-tenant back-office for game agents: agent and player administration,
// transactional game account provisioning, commission and activity reporting.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/backoffice/docs"
	"github.com/saradorri/backoffice/internal/app"
)

// @title Agent Back-Office API
// @version 1.0
// @description Agent management, game account provisioning and reporting for the agent back-office.

// @contact.name API Support
// @contact.email support@backoffice.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
