package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type ComplaintRepo interface {
	Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	IDsBySubmitter(ctx context.Context, submittedBy string) ([]uint, error)
	// Probe runs a cheap one-row read to verify store connectivity.
	Probe(ctx context.Context) ([]uint, error)
}

type complaintRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComplaintRepo(db *gorm.DB, baseLog *logger.Logger) ComplaintRepo {
	return &complaintRepo{
		db:  db,
		log: baseLog.With("repo", "ComplaintRepo"),
	}
}

func (r *complaintRepo) Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	if err := r.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Internal Server Error: Failed to log complaint.", err)
	}
	return complaint, nil
}

func (r *complaintRepo) IDsBySubmitter(ctx context.Context, submittedBy string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("submitted_by = ?", submittedBy).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch complaints", err)
	}
	return ids, nil
}

func (r *complaintRepo) Probe(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "store probe failed", err)
	}
	return ids, nil
}
