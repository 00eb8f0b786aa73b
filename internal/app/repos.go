package app

import (
	"gorm.io/gorm"

	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/repos"
)

type Repos struct {
	Complaint           repos.ComplaintRepo
	Summary             repos.SummaryRepo
	SummaryComplaintMap repos.SummaryComplaintMapRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Complaint:           repos.NewComplaintRepo(db, log),
		Summary:             repos.NewSummaryRepo(db, log),
		SummaryComplaintMap: repos.NewSummaryComplaintMapRepo(db, log),
	}
}
