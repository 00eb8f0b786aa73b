package repos

import (
	"context"
	"testing"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/repos/testutil"
)

func TestSummaryRepoConditionalUpdates(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSummaryRepo(db, testutil.Logger(t))

	seeded := testutil.SeedSummary(t, db, 7, 900042)

	// Update by composite key returns the post-update row.
	remarks := "Fixed pothole"
	updated, err := repo.UpdateWorkflowStatus(ctx, 7, seeded.SummaryID, domain.WorkflowStatusResolved, &remarks)
	if err != nil {
		t.Fatalf("UpdateWorkflowStatus: %v", err)
	}
	if updated.ManagerWorkflowStatus != domain.WorkflowStatusResolved {
		t.Errorf("status = %q, want Resolved", updated.ManagerWorkflowStatus)
	}
	if updated.ManagerRemarks != remarks {
		t.Errorf("remarks = %q, want %q", updated.ManagerRemarks, remarks)
	}

	// The store enforces no forward-only transition policy: un-resolving is
	// allowed at this layer.
	reverted, err := repo.UpdateWorkflowStatus(ctx, 7, seeded.SummaryID, domain.WorkflowStatusPending, nil)
	if err != nil {
		t.Fatalf("revert status: %v", err)
	}
	if reverted.ManagerWorkflowStatus != domain.WorkflowStatusPending {
		t.Errorf("status = %q, want Pending", reverted.ManagerWorkflowStatus)
	}
	// Remarks untouched when nil remarks are passed.
	if reverted.ManagerRemarks != remarks {
		t.Errorf("remarks changed on status-only update: %q", reverted.ManagerRemarks)
	}

	// Zero rows matched signals NotFound.
	if _, err := repo.UpdateWorkflowStatus(ctx, 7, 999999999, domain.WorkflowStatusResolved, nil); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected NotFound for missing row, got %v", err)
	}

	// Keying by summary id alone addresses the same row.
	verified, err := repo.UpdateSupervisorVerified(ctx, seeded.SummaryID, true)
	if err != nil {
		t.Fatalf("UpdateSupervisorVerified: %v", err)
	}
	if !verified.SupervisorVerified || verified.SupervisorVerifiedAt == nil {
		t.Error("verification flag/timestamp not persisted")
	}

	// pdf_path and pdf_hash land in one update.
	withReport, err := repo.SetReportArtifacts(ctx, 7, seeded.SummaryID, "https://storage.example/x.pdf", "abc123")
	if err != nil {
		t.Fatalf("SetReportArtifacts: %v", err)
	}
	if withReport.PDFPath == nil || withReport.PDFHash == nil {
		t.Fatal("report artifacts not persisted together")
	}
}

func TestSummaryRepoListFilters(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSummaryRepo(db, testutil.Logger(t))

	a := testutil.SeedSummary(t, db, 31, 910001)
	b := testutil.SeedSummary(t, db, 31, 910002)
	_ = b

	ward := 31
	rows, err := repo.List(ctx, SummaryListFilter{WardNo: &ward, NewestFirst: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("List returned %d rows, want >= 2", len(rows))
	}

	status := domain.WorkflowStatusPending
	rows, err = repo.List(ctx, SummaryListFilter{WardNo: &ward, Status: &status})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	for _, row := range rows {
		if row.ManagerWorkflowStatus != status {
			t.Errorf("filter leak: got status %q", row.ManagerWorkflowStatus)
		}
	}

	flags, err := repo.ListStatusFlags(ctx, a.WardNo)
	if err != nil {
		t.Fatalf("ListStatusFlags: %v", err)
	}
	if len(flags) < 2 {
		t.Errorf("ListStatusFlags returned %d rows, want >= 2", len(flags))
	}
}
