package repository

import (
	"context"
	"fmt"

	"github.com/d9705996/kysai/internal/model"
	"gorm.io/gorm"
)

// HSEReportRepository persists workplace safety reports.
type HSEReportRepository struct {
	db *gorm.DB
}

func NewHSEReportRepository(db *gorm.DB) *HSEReportRepository {
	return &HSEReportRepository{db: db}
}

// Create inserts the report as given and fills in its ID.
func (r *HSEReportRepository) Create(ctx context.Context, report *model.HSEReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("creating hse report: %w", err)
	}
	return nil
}
