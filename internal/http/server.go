package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/http/handlers"
	"github.com/saradorri/backoffice/internal/http/middleware"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/metrics"
	"github.com/saradorri/backoffice/internal/infrastructure/rbac"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the route handlers mounted under /api/v1
type Handlers struct {
	User      *handlers.UserHandler
	Agent     *handlers.AgentHandler
	Dashboard *handlers.DashboardHandler
	Catalog   *handlers.CatalogHandler
	Activity  *handlers.ActivityHandler
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	jwtService   auth.JWTService
	enforcer     rbac.Enforcer
	metrics      *metrics.Metrics
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	logger       *logger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	jwtService auth.JWTService,
	enforcer rbac.Enforcer,
	m *metrics.Metrics,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()
	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(errorHandler.TimeoutMiddleware(cfg.RequestTimeout))

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		enforcer:     enforcer,
		metrics:      m,
		handlers:     h,
		errorHandler: errorHandler,
		logger:       log,
		httpServer: &http.Server{
			Addr:    cfg.Host + ":" + cfg.Port,
			Handler: router,
		},
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/login", s.handlers.User.Login)
		v1.POST("/register", s.handlers.User.Register)

		protected := v1.Group("")
		protected.Use(middleware.JWTMiddleware(s.jwtService), middleware.RBACMiddleware(s.enforcer, s.logger))
		{
			protected.POST("/user/change-password", s.handlers.User.ChangePassword)

			protected.POST("/agents", s.handlers.Agent.CreateAgent)
			protected.GET("/agents", s.handlers.Agent.ListAgents)
			protected.GET("/users/players", s.handlers.Agent.ListPlayers)

			dashboard := protected.Group("/dashboard")
			{
				dashboard.POST("/create-accounts", s.handlers.Dashboard.CreateAccounts)
				dashboard.GET("/search", s.handlers.Dashboard.Search)
			}

			protected.GET("/games", s.handlers.Catalog.ListGames)
			protected.POST("/games/:id/sync-balance", s.handlers.Catalog.SyncBalance)
			protected.GET("/commissions", s.handlers.Catalog.ListCommissions)
			protected.GET("/sub-accounts", s.handlers.Catalog.ListSubAccounts)
			protected.POST("/sub-accounts", s.handlers.Catalog.CreateSubAccount)

			protected.GET("/activity-logs", s.handlers.Activity.List)
		}
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
