package services

import (
	"fmt"
	"time"

	"github.com/civiclens/civiclens-backend/internal/complaintid"
	"github.com/civiclens/civiclens-backend/internal/domain"
)

// SummaryView is the listing shape the clients consume. The encoded
// composite id is the only identifier exposed.
type SummaryView struct {
	ID                 string    `json:"id"`
	WardNo             int       `json:"ward_no"`
	ComplaintSeq       int       `json:"complaint_seq"`
	Summary            string    `json:"summary"`
	Address            string    `json:"address"`
	ProblemType        string    `json:"problem_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Remarks            string    `json:"remarks,omitempty"`
	PDFStatus          string    `json:"pdf_status"`
	PDFPath            *string   `json:"pdf_path,omitempty"`
	SupervisorVerified bool      `json:"supervisor_verified"`
	ComplaintCount     int       `json:"complaint_count"`
}

func toSummaryView(s *domain.Summary) SummaryView {
	address := s.WardName
	if address == "" {
		address = fmt.Sprintf("Ward %d", s.WardNo)
	}
	problemType := s.ProblemType
	if problemType == "" {
		problemType = "General"
	}
	status := s.ManagerWorkflowStatus
	if status == "" {
		status = domain.WorkflowStatusPending
	}
	updatedAt := s.CreatedAt
	if s.SupervisorVerifiedAt != nil {
		updatedAt = *s.SupervisorVerifiedAt
	}
	return SummaryView{
		ID:                 complaintid.Encode(s.WardNo, s.SummaryID),
		WardNo:             s.WardNo,
		ComplaintSeq:       s.SummaryID,
		Summary:            s.SummaryText,
		Address:            address,
		ProblemType:        problemType,
		Status:             status,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
		Remarks:            s.ManagerRemarks,
		PDFStatus:          s.PDFStatus,
		PDFPath:            s.PDFPath,
		SupervisorVerified: s.SupervisorVerified,
		ComplaintCount:     s.ComplaintCount,
	}
}

func toSummaryViews(rows []*domain.Summary) []SummaryView {
	out := make([]SummaryView, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSummaryView(s))
	}
	return out
}
