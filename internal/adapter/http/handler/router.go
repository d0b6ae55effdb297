package handler

import (
	"atm-transaction-core/internal/adapter/http/middleware"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/internal/terminal"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Terminal       *terminal.Terminal
	OperatorAuth   ports.OperatorAuthService
	TokenSvc       ports.TokenService
	JournalStore   ports.JournalStore // nil = operator journal access disabled
	ReconQueue     ports.ReconciliationQueue
	HealthCheckers []ports.HealthChecker
	MetricsReg     *prometheus.Registry // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	if deps.MetricsReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsReg, promhttp.HandlerOpts{})))
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Customer console (the physical front panel; no network auth) ---
	sessionHandler := NewSessionHandler(deps.Terminal)
	sess := v1.Group("/session")
	{
		sess.POST("/card", sessionHandler.InsertCard)
		sess.GET("", sessionHandler.GetState)
		sess.POST("/pin", sessionHandler.SubmitPIN)
		sess.POST("/transaction", sessionHandler.SelectTransaction)
		sess.POST("/envelope", sessionHandler.EnvelopeReceived)
		sess.POST("/cancel", sessionHandler.Cancel)
		sess.POST("/end", sessionHandler.EndSession)
	}

	// --- Operator maintenance API (JWT-authenticated) ---
	operatorHandler := NewOperatorHandler(deps.OperatorAuth, deps.JournalStore, deps.ReconQueue)
	operator := v1.Group("/operator")
	{
		operator.POST("/login", operatorHandler.Login)

		jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
		operator.GET("/journal", jwtAuth, operatorHandler.Journal)
		operator.GET("/reconciliation", jwtAuth, operatorHandler.Reconciliation)
	}

	return r
}
