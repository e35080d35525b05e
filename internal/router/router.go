package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/justsurfingit/job-portal-api/internal/auth"
	"github.com/justsurfingit/job-portal-api/internal/handlers"
	"github.com/justsurfingit/job-portal-api/internal/metrics"
	"github.com/justsurfingit/job-portal-api/internal/middleware"
	"github.com/justsurfingit/job-portal-api/internal/services"
)

type Deps struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	CookiePolicy   auth.CookiePolicy

	Sessions     *auth.SessionService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Workflow     *services.ApplicationWorkflow
	Extractor    handlers.JobExtractor // optional

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Ping     func(context.Context) error
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))

	config := cors.DefaultConfig()
	config.AllowOrigins = d.AllowedOrigins
	config.AllowCredentials = true
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	jobHandler := handlers.NewJobHandler(d.Jobs, d.Extractor)
	appHandler := handlers.NewApplicationHandler(d.Workflow, d.Applications)
	authHandler := handlers.NewAuthHandler(d.Sessions, d.CookiePolicy)
	requireSession := middleware.RequireSession(d.Sessions)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck(d.Ping))
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	r.POST("/jwt", authHandler.IssueToken)

	r.GET("/jobs", jobHandler.ListJobs)
	r.GET("/jobs/:id", jobHandler.GetJob)
	r.POST("/jobs", jobHandler.CreateJob)
	if d.Extractor != nil {
		r.POST("/jobs/extract", jobHandler.ParseJob)
	}

	r.POST("/job-applications", requireSession, appHandler.Submit)
	r.GET("/job-application", requireSession, appHandler.ListMine)
	r.PATCH("/job-applications/:id", appHandler.UpdateStatus)

	return r
}
