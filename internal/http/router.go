package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/civiclens/civiclens-backend/internal/http/handlers"
	httpMW "github.com/civiclens/civiclens-backend/internal/http/middleware"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ComplaintHandler *httpH.ComplaintHandler
	WorkflowHandler  *httpH.WorkflowHandler
	ReportHandler    *httpH.ReportHandler
	AnalyticsHandler *httpH.AnalyticsHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Intake and listings
		if cfg.ComplaintHandler != nil {
			api.POST("/complaints", cfg.ComplaintHandler.Submit)
			api.GET("/complaints", cfg.ComplaintHandler.List)
			api.GET("/my-complaints", cfg.ComplaintHandler.MyComplaints)
			api.GET("/db-test", cfg.ComplaintHandler.DBTest)
		}

		// Manager and supervisor workflow
		if cfg.WorkflowHandler != nil {
			api.PATCH("/complaints/:id/status", cfg.WorkflowHandler.UpdateStatus)
			api.POST("/remarks", cfg.WorkflowHandler.UpdateRemarks)
			api.GET("/remarks", cfg.WorkflowHandler.GetRemarks)
			api.PATCH("/pdf-status", cfg.WorkflowHandler.UpdatePDFStatus)
			api.PATCH("/supervisor-verify", cfg.WorkflowHandler.UpdateVerification)
		}

		// Resolution reports
		if cfg.ReportHandler != nil {
			api.POST("/reports/submit", cfg.ReportHandler.Submit)
			api.GET("/reports/download/:id", cfg.ReportHandler.Download)
		}

		// Dashboards
		if cfg.AnalyticsHandler != nil {
			api.GET("/reports/submissions", cfg.AnalyticsHandler.Submissions)
			api.GET("/analytics", cfg.AnalyticsHandler.WardCounters)
		}
	}

	return r
}
