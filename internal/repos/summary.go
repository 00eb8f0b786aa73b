package repos

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

// SummaryListFilter narrows the summary listing. Nil fields are not applied.
type SummaryListFilter struct {
	WardNo      *int
	Status      *string
	ProblemType *string
	SubmittedBy *string
	NewestFirst bool
}

// StatusFlags is the minimal projection the ward counters are derived from.
type StatusFlags struct {
	ManagerWorkflowStatus string
	SupervisorVerified    bool
}

// SummaryRepo is the only writer of mutable workflow fields on a summary.
// Every mutation is a single conditional update keyed by (ward_no,
// summary_id) or summary_id alone, returning the post-update row or
// NotFound when zero rows matched. No forward-only transition policy is
// enforced here; any allowed status value may overwrite any other.
type SummaryRepo interface {
	GetByWardAndSeq(ctx context.Context, wardNo, summaryID int) (*domain.Summary, error)
	GetBySummaryID(ctx context.Context, summaryID int) (*domain.Summary, error)
	List(ctx context.Context, filter SummaryListFilter) ([]*domain.Summary, error)
	ListBySummaryIDs(ctx context.Context, summaryIDs []int) ([]*domain.Summary, error)
	ListSubmissions(ctx context.Context, wardNo int, verified *bool, newestFirst bool) ([]*domain.Summary, error)
	ListStatusFlags(ctx context.Context, wardNo int) ([]StatusFlags, error)

	UpdateWorkflowStatus(ctx context.Context, wardNo, summaryID int, status string, remarks *string) (*domain.Summary, error)
	UpdateManagerRemarks(ctx context.Context, summaryID int, managerStatus string, remarks *string) (*domain.Summary, error)
	UpdatePDFStatus(ctx context.Context, summaryID int, pdfStatus string, pdfPath *string) (*domain.Summary, error)
	UpdateSupervisorVerified(ctx context.Context, summaryID int, verified bool) (*domain.Summary, error)
	SetReportArtifacts(ctx context.Context, wardNo, summaryID int, pdfPath, pdfHash string) (*domain.Summary, error)
}

type summaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	return &summaryRepo{
		db:  db,
		log: baseLog.With("repo", "SummaryRepo"),
	}
}

func (r *summaryRepo) GetByWardAndSeq(ctx context.Context, wardNo, summaryID int) (*domain.Summary, error) {
	var s domain.Summary
	err := r.db.WithContext(ctx).
		Where("ward_no = ? AND summary_id = ?", wardNo, summaryID).
		First(&s).Error
	if err != nil {
		return nil, summaryLookupError(err)
	}
	return &s, nil
}

func (r *summaryRepo) GetBySummaryID(ctx context.Context, summaryID int) (*domain.Summary, error) {
	var s domain.Summary
	err := r.db.WithContext(ctx).
		Where("summary_id = ?", summaryID).
		First(&s).Error
	if err != nil {
		return nil, summaryLookupError(err)
	}
	return &s, nil
}

func (r *summaryRepo) List(ctx context.Context, filter SummaryListFilter) ([]*domain.Summary, error) {
	q := r.db.WithContext(ctx).Model(&domain.Summary{})
	if filter.WardNo != nil {
		q = q.Where("ward_no = ?", *filter.WardNo)
	}
	if filter.Status != nil {
		q = q.Where("manager_workflow_status = ?", *filter.Status)
	}
	if filter.ProblemType != nil {
		q = q.Where("problem_type = ?", *filter.ProblemType)
	}
	if filter.SubmittedBy != nil {
		q = q.Where("submitted_by = ?", *filter.SubmittedBy)
	}
	q = q.Order(orderByCreated(filter.NewestFirst))

	var out []*domain.Summary
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch summaries", err)
	}
	return out, nil
}

func (r *summaryRepo) ListBySummaryIDs(ctx context.Context, summaryIDs []int) ([]*domain.Summary, error) {
	var out []*domain.Summary
	if len(summaryIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Where("summary_id IN ?", summaryIDs).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch summaries", err)
	}
	return out, nil
}

// ListSubmissions returns Resolved summaries that already carry a generated
// report, optionally filtered by supervisor verification.
func (r *summaryRepo) ListSubmissions(ctx context.Context, wardNo int, verified *bool, newestFirst bool) ([]*domain.Summary, error) {
	q := r.db.WithContext(ctx).
		Where("ward_no = ?", wardNo).
		Where("manager_workflow_status = ?", domain.WorkflowStatusResolved).
		Where("pdf_path IS NOT NULL")
	if verified != nil {
		q = q.Where("supervisor_verified = ?", *verified)
	}
	q = q.Order(orderByCreated(newestFirst))

	var out []*domain.Summary
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch submissions", err)
	}
	return out, nil
}

func (r *summaryRepo) ListStatusFlags(ctx context.Context, wardNo int) ([]StatusFlags, error) {
	var out []StatusFlags
	err := r.db.WithContext(ctx).
		Model(&domain.Summary{}).
		Select("manager_workflow_status", "supervisor_verified").
		Where("ward_no = ?", wardNo).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch analytics data", err)
	}
	return out, nil
}

func (r *summaryRepo) UpdateWorkflowStatus(ctx context.Context, wardNo, summaryID int, status string, remarks *string) (*domain.Summary, error) {
	updates := map[string]interface{}{
		"manager_workflow_status": status,
		"updated_at":              time.Now().UTC(),
	}
	if remarks != nil && strings.TrimSpace(*remarks) != "" {
		updates["manager_remarks"] = *remarks
	}
	return r.updateReturning(ctx, "ward_no = ? AND summary_id = ?", []interface{}{wardNo, summaryID}, updates)
}

func (r *summaryRepo) UpdateManagerRemarks(ctx context.Context, summaryID int, managerStatus string, remarks *string) (*domain.Summary, error) {
	updates := map[string]interface{}{
		"manager_status": managerStatus,
		"updated_at":     time.Now().UTC(),
	}
	if remarks != nil && strings.TrimSpace(*remarks) != "" {
		updates["manager_remarks"] = strings.TrimSpace(*remarks)
	}
	return r.updateReturning(ctx, "summary_id = ?", []interface{}{summaryID}, updates)
}

func (r *summaryRepo) UpdatePDFStatus(ctx context.Context, summaryID int, pdfStatus string, pdfPath *string) (*domain.Summary, error) {
	updates := map[string]interface{}{
		"pdf_status": pdfStatus,
		"updated_at": time.Now().UTC(),
	}
	if pdfPath != nil && strings.TrimSpace(*pdfPath) != "" {
		updates["pdf_path"] = strings.TrimSpace(*pdfPath)
	}
	return r.updateReturning(ctx, "summary_id = ?", []interface{}{summaryID}, updates)
}

func (r *summaryRepo) UpdateSupervisorVerified(ctx context.Context, summaryID int, verified bool) (*domain.Summary, error) {
	updates := map[string]interface{}{
		"supervisor_verified": verified,
		"updated_at":          time.Now().UTC(),
	}
	if verified {
		updates["supervisor_verified_at"] = time.Now().UTC()
	}
	return r.updateReturning(ctx, "summary_id = ?", []interface{}{summaryID}, updates)
}

// SetReportArtifacts persists pdf_path and pdf_hash in one update so the
// pipeline never leaves a row with one artifact but not the other.
func (r *summaryRepo) SetReportArtifacts(ctx context.Context, wardNo, summaryID int, pdfPath, pdfHash string) (*domain.Summary, error) {
	updates := map[string]interface{}{
		"pdf_path":   pdfPath,
		"pdf_hash":   pdfHash,
		"updated_at": time.Now().UTC(),
	}
	return r.updateReturning(ctx, "ward_no = ? AND summary_id = ?", []interface{}{wardNo, summaryID}, updates)
}

func (r *summaryRepo) updateReturning(ctx context.Context, cond string, args []interface{}, updates map[string]interface{}) (*domain.Summary, error) {
	var s domain.Summary
	res := r.db.WithContext(ctx).
		Model(&s).
		Clauses(clause.Returning{}).
		Where(cond, args...).
		Updates(updates)
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to update summary", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Summary not found")
	}
	return &s, nil
}

func orderByCreated(newestFirst bool) string {
	if newestFirst {
		return "created_at DESC"
	}
	return "created_at ASC"
}

func summaryLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, "Summary not found")
	}
	return apperr.Wrap(apperr.KindUpstream, "Failed to fetch summary", err)
}
