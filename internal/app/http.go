package app

import (
	"github.com/civiclens/civiclens-backend/internal/http"
	httpH "github.com/civiclens/civiclens-backend/internal/http/handlers"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Complaint *httpH.ComplaintHandler
	Workflow  *httpH.WorkflowHandler
	Report    *httpH.ReportHandler
	Analytics *httpH.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Complaint: httpH.NewComplaintHandler(services.Complaint, log),
		Workflow:  httpH.NewWorkflowHandler(services.Workflow, log),
		Report:    httpH.NewReportHandler(services.Report, log),
		Analytics: httpH.NewAnalyticsHandler(services.Analytics, log),
	}
}

func wireServer(log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		HealthHandler:    handlers.Health,
		ComplaintHandler: handlers.Complaint,
		WorkflowHandler:  handlers.Workflow,
		ReportHandler:    handlers.Report,
		AnalyticsHandler: handlers.Analytics,
	})
}
