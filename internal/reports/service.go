// Package reports implements the resolution-report pipeline: eligibility
// gate, document rendering, content hashing, object-store upload, and
// artifact persistence.
package reports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civiclens/civiclens-backend/internal/complaintid"
	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

// Renderer turns an HTML document plus header/footer bands into a paginated
// PDF byte stream.
type Renderer interface {
	RenderPDF(ctx context.Context, bodyHTML, headerHTML, footerHTML string) ([]byte, error)
}

// ObjectStore accepts a named blob and resolves its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
}

// SummaryStore is the slice of the workflow store the pipeline needs:
// resolving the target row and persisting both report artifacts in a single
// update.
type SummaryStore interface {
	GetByWardAndSeq(ctx context.Context, wardNo, summaryID int) (*domain.Summary, error)
	SetReportArtifacts(ctx context.Context, wardNo, summaryID int, pdfPath, pdfHash string) (*domain.Summary, error)
}

type SubmitResult struct {
	ReportID string `json:"reportId"`
	PDFHash  string `json:"pdfHash"`
}

type Service struct {
	log       *logger.Logger
	renderer  Renderer
	store     ObjectStore
	summaries SummaryStore

	// Injection points for deterministic tests.
	now         func() time.Time
	newReportID func() string
}

func NewService(log *logger.Logger, renderer Renderer, store ObjectStore, summaries SummaryStore) *Service {
	return &Service{
		log:         log.With("service", "ReportService"),
		renderer:    renderer,
		store:       store,
		summaries:   summaries,
		now:         time.Now,
		newReportID: uuid.NewString,
	}
}

// Submit runs the canonical pipeline for the summary addressed by the
// encoded composite id. Steps, in order, each a failure point: eligibility
// gate, render, digest, upload, persist. A rendering failure aborts before
// any side effect; an upload failure aborts before persistence, leaving the
// previous artifacts untouched; a persistence failure after upload orphans
// the object and is still surfaced as a failure.
func (s *Service) Submit(ctx context.Context, encodedID string) (*SubmitResult, error) {
	summary, err := s.resolve(ctx, encodedID)
	if err != nil {
		return nil, err
	}

	if summary.ManagerWorkflowStatus != domain.WorkflowStatusResolved {
		return nil, apperr.New(apperr.KindIneligibleState, "Report generation only allowed for RESOLVED complaints.")
	}
	if strings.TrimSpace(summary.ManagerRemarks) == "" {
		return nil, apperr.New(apperr.KindMissingRemarks, "Manager remarks are mandatory for report generation.")
	}

	reportID := s.newReportID()
	pdf, err := s.render(ctx, summary, reportID, summary.ManagerRemarks)
	if err != nil {
		return nil, err
	}

	digest := Digest(pdf)

	key := objectKey(summary.WardNo, summary.SummaryID, reportID)
	if err := s.store.Upload(ctx, key, pdf); err != nil {
		s.log.Error("report upload failed", "key", key, "error", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to upload report to storage.", err)
	}
	publicURL := s.store.PublicURL(key)

	if _, err := s.summaries.SetReportArtifacts(ctx, summary.WardNo, summary.SummaryID, publicURL, digest); err != nil {
		// The uploaded object is orphaned here; reconciliation is an
		// operational sweep, not done inline.
		s.log.Error("report artifact persistence failed after upload", "key", key, "error", err)
		return nil, err
	}

	s.log.Info("report generated",
		"ward_no", summary.WardNo,
		"summary_id", summary.SummaryID,
		"report_id", reportID,
		"pdf_hash", digest,
	)
	return &SubmitResult{ReportID: reportID, PDFHash: digest}, nil
}

// Download regenerates the document on demand for immediate delivery. It
// never touches storage or the persisted pdf_path/pdf_hash fields; the
// header marks the copy as view-only.
func (s *Service) Download(ctx context.Context, encodedID string) (filename string, pdf []byte, err error) {
	summary, err := s.resolve(ctx, encodedID)
	if err != nil {
		return "", nil, err
	}

	remarks := summary.ManagerRemarks
	if strings.TrimSpace(remarks) == "" {
		remarks = "No remarks provided."
	}

	pdf, err = s.render(ctx, summary, "VIEW-ONLY-COPY", remarks)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("report-%s.pdf", encodedID), pdf, nil
}

func (s *Service) resolve(ctx context.Context, encodedID string) (*domain.Summary, error) {
	wardNo, summaryID, err := complaintid.Decode(encodedID)
	if err != nil {
		return nil, err
	}
	summary, err := s.summaries.GetByWardAndSeq(ctx, wardNo, summaryID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.New(apperr.KindNotFound, "Complaint not found")
		}
		return nil, err
	}
	return summary, nil
}

func (s *Service) render(ctx context.Context, summary *domain.Summary, reportID, remarks string) ([]byte, error) {
	now := s.now()
	problemType := summary.ProblemType
	if problemType == "" {
		problemType = "General"
	}

	body := RenderBody(ReportData{
		ReportID:       reportID,
		SummaryID:      summary.SummaryID,
		WardNo:         summary.WardNo,
		ProblemType:    problemType,
		DateReported:   summary.CreatedAt,
		SummaryText:    summary.SummaryText,
		ManagerName:    fmt.Sprintf("Ward %d Manager", summary.WardNo),
		ManagerRemarks: remarks,
		ResolutionTime: now,
		SignatureTime:  now,
	})

	pdf, err := s.renderer.RenderPDF(ctx, body, RenderHeader(reportID, now), RenderFooter())
	if err != nil {
		s.log.Error("document render failed",
			"ward_no", summary.WardNo,
			"summary_id", summary.SummaryID,
			"error", err,
		)
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to generate report document", err)
	}
	return pdf, nil
}

// Digest is the integrity anchor for a report: the SHA-256 hex fingerprint
// of the exact byte stream delivered and uploaded. A verifier recomputes it
// over the stored bytes and compares.
func Digest(pdf []byte) string {
	sum := sha256.Sum256(pdf)
	return hex.EncodeToString(sum[:])
}

func objectKey(wardNo, summaryID int, reportID string) string {
	return fmt.Sprintf("%d_%d_%s.pdf", wardNo, summaryID, reportID)
}
