package app

import (
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/reports"
	"github.com/civiclens/civiclens-backend/internal/services"
)

type Services struct {
	Complaint services.ComplaintService
	Workflow  services.WorkflowService
	Analytics services.AnalyticsService
	Report    *reports.Service
}

func wireServices(log *logger.Logger, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Complaint: services.NewComplaintService(log, reposet.Complaint, reposet.Summary, reposet.SummaryComplaintMap),
		Workflow:  services.NewWorkflowService(log, reposet.Summary),
		Analytics: services.NewAnalyticsService(log, reposet.Summary),
		Report:    reports.NewService(log, clients.Renderer, clients.GcpBucket, reposet.Summary),
	}
}
