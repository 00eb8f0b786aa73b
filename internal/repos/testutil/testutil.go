// Package testutil provides the shared Postgres-backed test harness for repo
// integration tests. Tests are skipped unless TEST_POSTGRES_DSN is set.
package testutil

import (
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error

	errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}
		dbConn, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}
		dbErr = dbConn.AutoMigrate(
			&domain.Complaint{},
			&domain.Summary{},
			&domain.SummaryComplaintMap{},
		)
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repo integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return dbConn
}

// CleanupSummary removes a seeded summary row after the test.
func CleanupSummary(tb testing.TB, db *gorm.DB, summaryID int) {
	tb.Helper()
	tb.Cleanup(func() {
		_ = db.Where("summary_id = ?", summaryID).Delete(&domain.Summary{}).Error
	})
}

// SeedSummary inserts a summary row with sane defaults.
func SeedSummary(tb testing.TB, db *gorm.DB, wardNo, summaryID int) *domain.Summary {
	tb.Helper()
	s := &domain.Summary{
		WardNo:                wardNo,
		SummaryID:             summaryID,
		ProblemType:           "Pothole",
		SummaryText:           "Large pothole near the market junction",
		ManagerWorkflowStatus: domain.WorkflowStatusPending,
		PDFStatus:             domain.PDFStatusNotGenerated,
	}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed summary: %v", err)
	}
	CleanupSummary(tb, db, summaryID)
	return s
}
