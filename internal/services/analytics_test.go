package services

import (
	"testing"
	"time"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/repos"
)

func TestCountWardSplitsManagerAndSupervisor(t *testing.T) {
	flags := []repos.StatusFlags{
		{ManagerWorkflowStatus: domain.WorkflowStatusPending},
		{ManagerWorkflowStatus: domain.WorkflowStatusPending},
		{ManagerWorkflowStatus: domain.WorkflowStatusInProgress},
		{ManagerWorkflowStatus: domain.WorkflowStatusResolved, SupervisorVerified: true},
		{ManagerWorkflowStatus: domain.WorkflowStatusResolved, SupervisorVerified: false},
		{ManagerWorkflowStatus: domain.WorkflowStatusResolved, SupervisorVerified: false},
	}

	c := countWard(flags)

	if c.Manager.TotalComplaints != 6 {
		t.Errorf("total_complaints = %d, want 6", c.Manager.TotalComplaints)
	}
	if c.Manager.Pending != 2 || c.Manager.InProgress != 1 || c.Manager.Resolved != 3 {
		t.Errorf("manager counters = %+v", c.Manager)
	}
	if c.Supervisor.TotalSubmissions != 3 {
		t.Errorf("total_submissions = %d, want 3", c.Supervisor.TotalSubmissions)
	}
	if c.Supervisor.Verified != 1 || c.Supervisor.PendingReview != 2 {
		t.Errorf("supervisor counters = %+v", c.Supervisor)
	}
}

func TestCountWardUnverifiedUnresolvedIsNotASubmission(t *testing.T) {
	// A verification flag on an unresolved row must not leak into the
	// supervisor dashboard.
	c := countWard([]repos.StatusFlags{
		{ManagerWorkflowStatus: domain.WorkflowStatusInProgress, SupervisorVerified: true},
	})
	if c.Supervisor.TotalSubmissions != 0 || c.Supervisor.Verified != 0 {
		t.Errorf("supervisor counters = %+v, want zeros", c.Supervisor)
	}
}

func TestCountWardBlankStatusCountsAsPending(t *testing.T) {
	c := countWard([]repos.StatusFlags{{ManagerWorkflowStatus: ""}})
	if c.Manager.Pending != 1 {
		t.Errorf("pending = %d, want 1", c.Manager.Pending)
	}
}

func TestSubmissionViewShape(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	verifiedAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	path := "https://storage.example/reports/7_42_x.pdf"
	v := toSubmissionView(&domain.Summary{
		ID:                   9,
		WardNo:               7,
		SummaryID:            42,
		SupervisorVerified:   true,
		SupervisorVerifiedAt: &verifiedAt,
		PDFPath:              &path,
		CreatedAt:            created,
	})

	if v.ID != 42 || v.ReportID != 9 {
		t.Errorf("ids = (%d, %d), want (42, 9)", v.ID, v.ReportID)
	}
	if v.Title != "Complaint Resolution #42" {
		t.Errorf("title = %q", v.Title)
	}
	if v.ManagerID != "Ward 7 Manager" {
		t.Errorf("manager_id = %q", v.ManagerID)
	}
	// submitted_at is the creation time even after verification.
	if !v.SubmittedAt.Equal(created) {
		t.Errorf("submitted_at = %v, want %v", v.SubmittedAt, created)
	}
	if v.PDFURL == nil || *v.PDFURL != path {
		t.Errorf("pdf_url = %v", v.PDFURL)
	}
	if len(v.ComplaintIDs) != 1 || v.ComplaintIDs[0] != 42 {
		t.Errorf("complaint_ids = %v", v.ComplaintIDs)
	}
}

func TestCountWardEmpty(t *testing.T) {
	c := countWard(nil)
	if c.Manager.TotalComplaints != 0 || c.Supervisor.TotalSubmissions != 0 {
		t.Errorf("counters = %+v, want all zero", c)
	}
}
