package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type SummaryComplaintMapRepo interface {
	SummaryIDsForComplaints(ctx context.Context, complaintIDs []uint) ([]int, error)
}

type summaryComplaintMapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryComplaintMapRepo(db *gorm.DB, baseLog *logger.Logger) SummaryComplaintMapRepo {
	return &summaryComplaintMapRepo{
		db:  db,
		log: baseLog.With("repo", "SummaryComplaintMapRepo"),
	}
}

func (r *summaryComplaintMapRepo) SummaryIDsForComplaints(ctx context.Context, complaintIDs []uint) ([]int, error) {
	var ids []int
	if len(complaintIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Model(&domain.SummaryComplaintMap{}).
		Where("complaint_id IN ?", complaintIDs).
		Distinct().
		Pluck("summary_id", &ids).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch summary mappings", err)
	}
	return ids, nil
}
