package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/d9705996/kysai/internal/domain"
	"github.com/d9705996/kysai/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QualityReportRepository persists quality reports.
type QualityReportRepository struct {
	db *gorm.DB
}

func NewQualityReportRepository(db *gorm.DB) *QualityReportRepository {
	return &QualityReportRepository{db: db}
}

// Create inserts a new report and fills in its ID.
func (r *QualityReportRepository) Create(ctx context.Context, report *model.QualityReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("creating quality report: %w", err)
	}
	return nil
}

// FindByID returns the report with the given id or domain.ErrReportNotFound.
func (r *QualityReportRepository) FindByID(ctx context.Context, id uint) (*model.QualityReport, error) {
	var report model.QualityReport
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("finding quality report %d: %w", id, err)
	}
	return &report, nil
}

// List returns every report, newest first. A non-empty search restricts the
// result to reports whose title or problem description contains it.
func (r *QualityReportRepository) List(ctx context.Context, search string) ([]*model.QualityReport, error) {
	q := r.db.WithContext(ctx).Model(&model.QualityReport{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(r.searchClause(), pattern, pattern)
	}

	var reports []*model.QualityReport
	if err := q.Order("created_at DESC").Order("id DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("listing quality reports: %w", err)
	}
	return reports, nil
}

// searchClause matches title or data.problem_description in the current
// dialect. SQLite stores the document as a BLOB, so it is cast before
// json_extract reads it.
func (r *QualityReportRepository) searchClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return "title LIKE ? OR data->>'problem_description' LIKE ?"
	}
	return "title LIKE ? OR json_extract(CAST(data AS TEXT), '$.problem_description') LIKE ?"
}

// Finalize merges technical notes into the report document and marks it
// finalized. Keys already present in data are kept as stored. The status flip
// only applies to rows that are not finalized yet, so concurrent calls cannot
// both succeed.
func (r *QualityReportRepository) Finalize(ctx context.Context, id uint, technicalNotes string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct {
			Status string
			Data   datatypes.JSON
		}
		res := tx.Model(&model.QualityReport{}).Select("status", "data").Where("id = ?", id).Scan(&row)
		if res.Error != nil {
			return fmt.Errorf("loading quality report %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrReportNotFound
		}
		if row.Status == model.StatusFinalized {
			return domain.ErrReportFinalized
		}

		data, err := mergeKey(row.Data, "technical_notes", technicalNotes)
		if err != nil {
			return fmt.Errorf("merging technical notes into report %d: %w", id, err)
		}

		res = tx.Model(&model.QualityReport{}).
			Where("id = ? AND status <> ?", id, model.StatusFinalized).
			Updates(map[string]any{
				"data":   data,
				"status": model.StatusFinalized,
			})
		if res.Error != nil {
			return fmt.Errorf("finalizing quality report %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrReportFinalized
		}
		return nil
	})
}

// mergeKey sets key in the JSON object doc, leaving every other member
// unchanged. An empty or null document becomes a new object.
func mergeKey(doc datatypes.JSON, key string, value any) (datatypes.JSON, error) {
	obj := map[string]json.RawMessage{}
	if len(doc) > 0 && string(doc) != "null" {
		if err := json.Unmarshal(doc, &obj); err != nil {
			return nil, err
		}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	obj[key] = raw
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// CountAll returns the number of reports.
func (r *QualityReportRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.QualityReport{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting quality reports: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of reports in the given status.
func (r *QualityReportRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.QualityReport{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting %s quality reports: %w", status, err)
	}
	return count, nil
}
