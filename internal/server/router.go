package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArchitSaxena349/credit-approval-system/internal/config"
	"github.com/ArchitSaxena349/credit-approval-system/internal/http/handlers"
	"github.com/ArchitSaxena349/credit-approval-system/internal/http/middleware"
	"github.com/ArchitSaxena349/credit-approval-system/internal/version"
	"github.com/ArchitSaxena349/credit-approval-system/internal/web"
)

type Dependencies struct {
	Pinger      handlers.Pinger
	Dashboard   *handlers.DashboardHandler
	Register    *handlers.RegisterHandler
	Eligibility *handlers.EligibilityHandler
	Loan        *handlers.LoanHandler
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.FormBodyLimit(cfg.RequestBodyLimit))
	r.Use(func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	})
	r.SetHTMLTemplate(web.Templates())

	health := handlers.NewHealthHandler(deps.Pinger)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)

	r.GET("/", deps.Dashboard.Show)
	r.GET("/register", deps.Register.Show)
	r.POST("/register", deps.Register.Submit)
	r.GET("/check-eligibility", deps.Eligibility.Show)
	r.POST("/check-eligibility", deps.Eligibility.Check)
	r.POST("/check-eligibility/apply", deps.Eligibility.Apply)
	r.GET("/loan/:loanId", deps.Loan.Show)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"Title":   "Not Found",
			"Message": "That page does not exist.",
		})
	})

	return r
}
