package service

import (
	"context"

	"github.com/d9705996/kysai/internal/model"
	"github.com/d9705996/kysai/internal/repository"
	"github.com/d9705996/kysai/internal/schema"
	"gorm.io/datatypes"
)

const statusSuccess = "success"

// ReportService serves report queries and mutations.
type ReportService struct {
	reports *repository.QualityReportRepository
	hse     *repository.HSEReportRepository
}

func NewReportService(reports *repository.QualityReportRepository, hse *repository.HSEReportRepository) *ReportService {
	return &ReportService{reports: reports, hse: hse}
}

// List returns report summaries, newest first, optionally filtered by a
// substring of the title or problem description.
func (s *ReportService) List(ctx context.Context, search string) ([]schema.ReportSummary, error) {
	reports, err := s.reports.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]schema.ReportSummary, 0, len(reports))
	for _, r := range reports {
		out = append(out, schema.ReportSummary{
			ID:                 r.ID,
			Title:              r.Title,
			Status:             r.Status,
			CreatedAt:          r.CreatedAt,
			ProblemDescription: r.Data.Data().ProblemDescription,
		})
	}
	return out, nil
}

// Get returns the D3/D4 view of a report.
func (s *ReportService) Get(ctx context.Context, id uint) (*schema.ReportDetail, error) {
	r, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data := r.Data.Data().Normalize()
	return &schema.ReportDetail{
		ReportID:           r.ID,
		ProblemDescription: data.ProblemDescription,
		D3InterimActions:   data.D3InterimActions,
		D4RootCauses:       data.D4RootCauses,
		D4OccurrenceCauses: data.D4OccurrenceCauses,
		D4EscapeCauses:     data.D4EscapeCauses,
		D4Fishbone:         data.D4Fishbone,
	}, nil
}

// Finalize stores technical notes and moves the report to finalized. A
// report that is already finalized yields domain.ErrReportFinalized.
func (s *ReportService) Finalize(ctx context.Context, id uint, technicalNotes string) (*schema.StatusResponse, error) {
	if err := s.reports.Finalize(ctx, id, technicalNotes); err != nil {
		return nil, err
	}
	return &schema.StatusResponse{Status: statusSuccess, ReportID: id}, nil
}

// Stats returns the dashboard counters. Pending approvals is the number of
// drafts minus two, floored at zero.
func (s *ReportService) Stats(ctx context.Context) (*schema.DashboardStats, error) {
	total, err := s.reports.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	drafts, err := s.reports.CountByStatus(ctx, model.StatusDraft)
	if err != nil {
		return nil, err
	}
	return &schema.DashboardStats{
		TotalReports:     total,
		OpenIssues:       drafts,
		PendingApprovals: max(0, drafts-2),
	}, nil
}

// CreateHSE persists an HSE report with the status given, draft when omitted.
// Missing or null user observations are stored as "".
func (s *ReportService) CreateHSE(ctx context.Context, in schema.HSEReportCreate, author Author) (*schema.StatusResponse, error) {
	observations := in.Observations()
	report := &model.HSEReport{
		ImagePath:         *in.ImagePath,
		NonConformities:   datatypes.JSONSlice[string](in.NonConformities),
		UserObservations:  &observations,
		CorrectiveActions: datatypes.JSONSlice[string](in.CorrectiveActions),
		Status:            in.StatusOrDraft(),
		AuthorID:          author.UserID,
		OrganizationID:    author.OrganizationID,
	}
	if err := s.hse.Create(ctx, report); err != nil {
		return nil, err
	}
	return &schema.StatusResponse{Status: statusSuccess, ReportID: report.ID}, nil
}
