package services

import (
	"context"

	"github.com/civiclens/civiclens-backend/internal/complaintid"
	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/repos"
	"github.com/civiclens/civiclens-backend/internal/validate"
)

// RemarksView is the remarks read-model: the annotation fields plus enough
// workflow context to render a review screen.
type RemarksView struct {
	SummaryID      int     `json:"summary_id"`
	WardNo         int     `json:"ward_no"`
	ManagerStatus  string  `json:"manager_status,omitempty"`
	ManagerRemarks string  `json:"manager_remarks,omitempty"`
	WorkflowStatus string  `json:"workflow_status"`
	PDFStatus      string  `json:"pdf_status"`
	PDFPath        *string `json:"pdf_path,omitempty"`
}

type WorkflowService interface {
	UpdateStatus(ctx context.Context, encodedID, status string, remarks *string) (*SummaryView, error)
	UpdateRemarks(ctx context.Context, summaryID int, managerStatus string, remarks *string) (*RemarksView, error)
	GetRemarks(ctx context.Context, summaryID int) (*RemarksView, error)
	UpdatePDFStatus(ctx context.Context, summaryID int, pdfStatus string, pdfPath *string) (*SummaryView, error)
	UpdateVerification(ctx context.Context, summaryID int, verified bool) (*SummaryView, error)
}

type workflowService struct {
	log       *logger.Logger
	summaries repos.SummaryRepo
}

func NewWorkflowService(log *logger.Logger, summaries repos.SummaryRepo) WorkflowService {
	return &workflowService{
		log:       log.With("service", "WorkflowService"),
		summaries: summaries,
	}
}

func (s *workflowService) UpdateStatus(ctx context.Context, encodedID, status string, remarks *string) (*SummaryView, error) {
	wardNo, summaryID, err := complaintid.Decode(encodedID)
	if err != nil {
		return nil, err
	}
	if err := validate.Enum("status", status, domain.AllowedWorkflowStatuses); err != nil {
		return nil, err
	}

	updated, err := s.summaries.UpdateWorkflowStatus(ctx, wardNo, summaryID, status, remarks)
	if err != nil {
		return nil, err
	}
	s.log.Info("workflow status updated", "ward_no", wardNo, "summary_id", summaryID, "status", status)
	view := toSummaryView(updated)
	return &view, nil
}

func (s *workflowService) UpdateRemarks(ctx context.Context, summaryID int, managerStatus string, remarks *string) (*RemarksView, error) {
	if err := validate.Enum("manager_status", managerStatus, domain.AllowedManagerStatuses); err != nil {
		return nil, err
	}

	updated, err := s.summaries.UpdateManagerRemarks(ctx, summaryID, managerStatus, remarks)
	if err != nil {
		return nil, err
	}
	s.log.Info("manager remarks updated", "summary_id", summaryID, "manager_status", managerStatus)
	return toRemarksView(updated), nil
}

func (s *workflowService) GetRemarks(ctx context.Context, summaryID int) (*RemarksView, error) {
	summary, err := s.summaries.GetBySummaryID(ctx, summaryID)
	if err != nil {
		return nil, err
	}
	return toRemarksView(summary), nil
}

func (s *workflowService) UpdatePDFStatus(ctx context.Context, summaryID int, pdfStatus string, pdfPath *string) (*SummaryView, error) {
	if err := validate.Enum("pdf_status", pdfStatus, domain.AllowedPDFStatuses); err != nil {
		return nil, err
	}

	updated, err := s.summaries.UpdatePDFStatus(ctx, summaryID, pdfStatus, pdfPath)
	if err != nil {
		return nil, err
	}
	s.log.Info("pdf status updated", "summary_id", summaryID, "pdf_status", pdfStatus)
	view := toSummaryView(updated)
	return &view, nil
}

func (s *workflowService) UpdateVerification(ctx context.Context, summaryID int, verified bool) (*SummaryView, error) {
	updated, err := s.summaries.UpdateSupervisorVerified(ctx, summaryID, verified)
	if err != nil {
		return nil, err
	}
	s.log.Info("supervisor verification updated", "summary_id", summaryID, "verified", verified)
	view := toSummaryView(updated)
	return &view, nil
}

func toRemarksView(s *domain.Summary) *RemarksView {
	workflowStatus := s.ManagerWorkflowStatus
	if workflowStatus == "" {
		workflowStatus = domain.WorkflowStatusPending
	}
	return &RemarksView{
		SummaryID:      s.SummaryID,
		WardNo:         s.WardNo,
		ManagerStatus:  s.ManagerStatus,
		ManagerRemarks: s.ManagerRemarks,
		WorkflowStatus: workflowStatus,
		PDFStatus:      s.PDFStatus,
		PDFPath:        s.PDFPath,
	}
}
