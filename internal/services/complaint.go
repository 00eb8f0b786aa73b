package services

import (
	"context"
	"strings"
	"time"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/repos"
	"github.com/civiclens/civiclens-backend/internal/validate"
)

// IntakeReceipt acknowledges a logged complaint.
type IntakeReceipt struct {
	ComplaintID uint      `json:"complaint_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListParams are the raw, allow-listed query values for the summary listing.
type ListParams struct {
	WardNo      *int
	Status      *string
	ProblemType *string
	SubmittedBy *string
	Sort        string
}

type ComplaintService interface {
	SubmitIntake(ctx context.Context, rawText, submittedBy string) (*IntakeReceipt, error)
	ListSummaries(ctx context.Context, params ListParams) ([]SummaryView, error)
	ListForSubmitter(ctx context.Context, userID string) ([]SummaryView, error)
	ProbeStore(ctx context.Context) ([]uint, error)
}

type complaintService struct {
	log        *logger.Logger
	complaints repos.ComplaintRepo
	summaries  repos.SummaryRepo
	mappings   repos.SummaryComplaintMapRepo
}

func NewComplaintService(log *logger.Logger, complaints repos.ComplaintRepo, summaries repos.SummaryRepo, mappings repos.SummaryComplaintMapRepo) ComplaintService {
	return &complaintService{
		log:        log.With("service", "ComplaintService"),
		complaints: complaints,
		summaries:  summaries,
		mappings:   mappings,
	}
}

func (s *complaintService) SubmitIntake(ctx context.Context, rawText, submittedBy string) (*IntakeReceipt, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, apperr.New(apperr.KindValidation, "Complaint description is required and must be a string")
	}
	if err := validate.IntakeText(trimmed); err != nil {
		return nil, err
	}
	if err := validate.SubmitterID(strings.TrimSpace(submittedBy)); err != nil {
		return nil, err
	}

	created, err := s.complaints.Create(ctx, &domain.Complaint{
		RawText:     trimmed,
		SubmittedBy: strings.TrimSpace(submittedBy),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("complaint logged", "complaint_id", created.ID, "submitted_by", created.SubmittedBy)
	return &IntakeReceipt{ComplaintID: created.ID, CreatedAt: created.CreatedAt}, nil
}

func (s *complaintService) ListSummaries(ctx context.Context, params ListParams) ([]SummaryView, error) {
	sort := params.Sort
	if sort == "" {
		sort = "newest"
	}
	if err := validate.Sort(sort); err != nil {
		return nil, err
	}

	rows, err := s.summaries.List(ctx, repos.SummaryListFilter{
		WardNo:      params.WardNo,
		Status:      params.Status,
		ProblemType: params.ProblemType,
		SubmittedBy: params.SubmittedBy,
		NewestFirst: sort == "newest",
	})
	if err != nil {
		return nil, err
	}
	return toSummaryViews(rows), nil
}

// ListForSubmitter resolves the submitter's intake records through the
// summary mapping to the summaries aggregating them. A submitter with no
// mapped summaries gets an empty list, not an error.
func (s *complaintService) ListForSubmitter(ctx context.Context, userID string) ([]SummaryView, error) {
	complaintIDs, err := s.complaints.IDsBySubmitter(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(complaintIDs) == 0 {
		return []SummaryView{}, nil
	}

	summaryIDs, err := s.mappings.SummaryIDsForComplaints(ctx, complaintIDs)
	if err != nil {
		return nil, err
	}
	if len(summaryIDs) == 0 {
		return []SummaryView{}, nil
	}

	rows, err := s.summaries.ListBySummaryIDs(ctx, summaryIDs)
	if err != nil {
		return nil, err
	}
	return toSummaryViews(rows), nil
}

func (s *complaintService) ProbeStore(ctx context.Context) ([]uint, error) {
	return s.complaints.Probe(ctx)
}
