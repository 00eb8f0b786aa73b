package services

import (
	"context"
	"fmt"
	"time"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/repos"
)

// ManagerCounters aggregate every summary in a ward by workflow status.
type ManagerCounters struct {
	TotalComplaints int `json:"total_complaints"`
	Pending         int `json:"pending"`
	InProgress      int `json:"in_progress"`
	Resolved        int `json:"resolved"`
}

// SupervisorCounters aggregate only Resolved summaries, split by
// verification state.
type SupervisorCounters struct {
	TotalSubmissions int `json:"total_submissions"`
	PendingReview    int `json:"pending_review"`
	Verified         int `json:"verified"`
}

type WardCounters struct {
	WardNo     int                `json:"ward_no"`
	Manager    ManagerCounters    `json:"manager"`
	Supervisor SupervisorCounters `json:"supervisor"`
}

// SubmissionView is the supervisor-facing row for a generated report
// awaiting or past verification.
type SubmissionView struct {
	ID           int       `json:"id"`
	ReportID     uint      `json:"report_id"`
	Title        string    `json:"title"`
	Verified     bool      `json:"verified"`
	ManagerID    string    `json:"manager_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
	PDFURL       *string   `json:"pdf_url,omitempty"`
	ComplaintIDs []int     `json:"complaint_ids"`
}

type AnalyticsService interface {
	WardCounters(ctx context.Context, wardNo int) (*WardCounters, error)
	ListSubmissions(ctx context.Context, wardNo int, verified *bool, newestFirst bool) ([]SubmissionView, error)
}

type analyticsService struct {
	log       *logger.Logger
	summaries repos.SummaryRepo
}

func NewAnalyticsService(log *logger.Logger, summaries repos.SummaryRepo) AnalyticsService {
	return &analyticsService{
		log:       log.With("service", "AnalyticsService"),
		summaries: summaries,
	}
}

func (s *analyticsService) WardCounters(ctx context.Context, wardNo int) (*WardCounters, error) {
	flags, err := s.summaries.ListStatusFlags(ctx, wardNo)
	if err != nil {
		return nil, err
	}
	counters := countWard(flags)
	counters.WardNo = wardNo
	return counters, nil
}

// countWard derives both dashboards from one pass over the status flags.
// Supervisor counters only ever see Resolved rows: an unresolved summary is
// not a submission regardless of its verification flag.
func countWard(flags []repos.StatusFlags) *WardCounters {
	var c WardCounters
	for _, f := range flags {
		c.Manager.TotalComplaints++
		switch f.ManagerWorkflowStatus {
		case domain.WorkflowStatusInProgress:
			c.Manager.InProgress++
		case domain.WorkflowStatusResolved:
			c.Manager.Resolved++
			c.Supervisor.TotalSubmissions++
			if f.SupervisorVerified {
				c.Supervisor.Verified++
			} else {
				c.Supervisor.PendingReview++
			}
		default:
			c.Manager.Pending++
		}
	}
	return &c
}

func (s *analyticsService) ListSubmissions(ctx context.Context, wardNo int, verified *bool, newestFirst bool) ([]SubmissionView, error) {
	rows, err := s.summaries.ListSubmissions(ctx, wardNo, verified, newestFirst)
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSubmissionView(row))
	}
	return out, nil
}

func toSubmissionView(s *domain.Summary) SubmissionView {
	return SubmissionView{
		ID:           s.SummaryID,
		ReportID:     s.ID,
		Title:        fmt.Sprintf("Complaint Resolution #%d", s.SummaryID),
		Verified:     s.SupervisorVerified,
		ManagerID:    fmt.Sprintf("Ward %d Manager", s.WardNo),
		SubmittedAt:  s.CreatedAt,
		PDFURL:       s.PDFPath,
		ComplaintIDs: []int{s.SummaryID},
	}
}
