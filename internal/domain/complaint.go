package domain

import "time"

// Complaint is a raw citizen intake submission. Immutable after creation;
// an ingestion/classification pipeline outside this service aggregates
// complaints into summaries via SummaryComplaintMap.
type Complaint struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RawText     string    `gorm:"column:raw_text;type:text;not null" json:"raw_text"`
	SubmittedBy string    `gorm:"column:submitted_by;not null;index" json:"submitted_by"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Complaint) TableName() string { return "complaints" }

// SummaryComplaintMap associates intake complaints with the summary that
// aggregates them. One summary maps to many complaints; a complaint belongs
// to at most one summary (unique index on complaint_id).
type SummaryComplaintMap struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	SummaryID   int  `gorm:"column:summary_id;not null;index" json:"summary_id"`
	ComplaintID uint `gorm:"column:complaint_id;not null;uniqueIndex" json:"complaint_id"`
}

func (SummaryComplaintMap) TableName() string { return "summary_complaint_map" }
