package domain

import "time"

// Workflow statuses set by the ward manager. Authoritative for "is this
// complaint done": report generation is gated on Resolved.
const (
	WorkflowStatusPending    = "Pending"
	WorkflowStatusInProgress = "In Progress"
	WorkflowStatusResolved   = "Resolved"
)

// Manager annotation statuses. Independent of the workflow status above;
// written and read only by the remarks endpoints and never consulted by the
// report pipeline.
const (
	ManagerStatusDrafted   = "Drafted"
	ManagerStatusSubmitted = "Submitted"
	ManagerStatusReturned  = "Returned"
	ManagerStatusVerified  = "Verified"
)

// Report document statuses.
const (
	PDFStatusNotGenerated = "Not Generated"
	PDFStatusGenerated    = "Generated"
	PDFStatusSubmitted    = "Submitted"
	PDFStatusFailed       = "Failed"
)

var (
	AllowedWorkflowStatuses = []string{WorkflowStatusPending, WorkflowStatusInProgress, WorkflowStatusResolved}
	AllowedManagerStatuses  = []string{ManagerStatusDrafted, ManagerStatusSubmitted, ManagerStatusReturned, ManagerStatusVerified}
	AllowedPDFStatuses      = []string{PDFStatusNotGenerated, PDFStatusGenerated, PDFStatusSubmitted, PDFStatusFailed}
)

// Summary is the aggregated, workflow-bearing unit the resolution process
// operates on. The composite identifier (WardNo, SummaryID) is unique and
// immutable once assigned; SummaryID is additionally unique across wards, so
// endpoints keying by summary id alone address the same row as endpoints
// keying by the pair.
type Summary struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	WardNo      int    `gorm:"column:ward_no;not null;index" json:"ward_no"`
	SummaryID   int    `gorm:"column:summary_id;not null;uniqueIndex" json:"summary_id"`
	WardName    string `gorm:"column:ward_name" json:"ward_name,omitempty"`
	ProblemType string `gorm:"column:problem_type" json:"problem_type,omitempty"`
	SummaryText string `gorm:"column:summary_text;type:text" json:"summary_text"`
	SubmittedBy string `gorm:"column:submitted_by;index" json:"submitted_by,omitempty"`

	ManagerWorkflowStatus string `gorm:"column:manager_workflow_status;not null;default:'Pending';index" json:"manager_workflow_status"`
	ManagerRemarks        string `gorm:"column:manager_remarks;type:text" json:"manager_remarks,omitempty"`
	ManagerStatus         string `gorm:"column:manager_status" json:"manager_status,omitempty"`

	SupervisorVerified   bool       `gorm:"column:supervisor_verified;not null;default:false" json:"supervisor_verified"`
	SupervisorVerifiedAt *time.Time `gorm:"column:supervisor_verified_at" json:"supervisor_verified_at,omitempty"`

	// PDFPath and PDFHash are written together by a successful report
	// pipeline run and overwritten on regeneration, never versioned.
	PDFStatus string  `gorm:"column:pdf_status;not null;default:'Not Generated'" json:"pdf_status"`
	PDFPath   *string `gorm:"column:pdf_path" json:"pdf_path,omitempty"`
	PDFHash   *string `gorm:"column:pdf_hash" json:"pdf_hash,omitempty"`

	// ComplaintCount is denormalized by the ingestion pipeline; read-only here.
	ComplaintCount int `gorm:"column:complaint_count;not null;default:0" json:"complaint_count"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Summary) TableName() string { return "summaries" }
