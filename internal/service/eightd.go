package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/d9705996/kysai/internal/ai"
	"github.com/d9705996/kysai/internal/metrics"
	"github.com/d9705996/kysai/internal/model"
	"github.com/d9705996/kysai/internal/repository"
	"github.com/d9705996/kysai/internal/schema"
	"gorm.io/datatypes"
)

const titleRunes = 50

// EightDInput is a validated 8D generation request.
type EightDInput struct {
	ProblemDescription string
	IndustryContext    string
	Language           string
	Author             Author
}

// EightDService drafts 8D reports and stores them as draft quality reports.
type EightDService struct {
	ai      *ai.Client
	reports *repository.QualityReportRepository
	log     *slog.Logger
}

func NewEightDService(client *ai.Client, reports *repository.QualityReportRepository, log *slog.Logger) *EightDService {
	return &EightDService{ai: client, reports: reports, log: log}
}

// Generate produces the 8D document, persists it and returns it with the new
// report id. In mock mode the fixed document is used. In live mode every
// failure is returned and nothing is stored unless the reply parsed.
func (s *EightDService) Generate(ctx context.Context, in EightDInput) (*schema.EightDGenerationResponse, error) {
	mode := string(s.ai.Mode())

	var data model.ReportData
	if s.ai.Mode() == ai.ModeMock {
		data = ai.MockEightD(in.ProblemDescription)
	} else {
		prompt := ai.BuildEightDPrompt(in.ProblemDescription, in.IndustryContext, in.Language)
		start := time.Now()
		reply, err := s.ai.Text(ctx, prompt)
		metrics.GenerationDuration.WithLabelValues("8d").Observe(time.Since(start).Seconds())
		if err != nil {
			s.fail(mode, "model call failed", err)
			return nil, err
		}
		data, err = ai.ParseEightD(reply, in.ProblemDescription)
		if err != nil {
			s.fail(mode, "model reply rejected", err)
			return nil, err
		}
	}

	report := &model.QualityReport{
		Title:          Title(in.ProblemDescription),
		ReportType:     model.ReportTypeEightD,
		Status:         model.StatusDraft,
		Data:           datatypes.NewJSONType(data),
		AuthorID:       in.Author.UserID,
		OrganizationID: in.Author.OrganizationID,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		s.fail(mode, "persist 8d report", err)
		return nil, err
	}

	metrics.GenerationsTotal.WithLabelValues("8d", mode, metrics.OutcomeSuccess).Inc()
	s.log.InfoContext(ctx, "8d report generated", "report_id", report.ID, "mode", mode, "language", in.Language)

	return &schema.EightDGenerationResponse{
		ProblemDescription: data.ProblemDescription,
		D1Team:             data.D1Team,
		D2Problem:          data.D2Problem,
		D3InterimActions:   data.D3InterimActions,
		D4RootCauses:       data.D4RootCauses,
		D4OccurrenceCauses: data.D4OccurrenceCauses,
		D4EscapeCauses:     data.D4EscapeCauses,
		D4Fishbone:         data.D4Fishbone,
		D5ChosenPCA:        data.D5ChosenPCA,
		D6ImplementedPCA:   data.D6ImplementedPCA,
		D7Prevention:       data.D7Prevention,
		D8Recognition:      data.D8Recognition,
		ReportID:           report.ID,
	}, nil
}

func (s *EightDService) fail(mode, msg string, err error) {
	outcome := metrics.OutcomeError
	if errors.Is(err, ai.ErrTimeout) {
		outcome = metrics.OutcomeTimeout
	}
	metrics.GenerationsTotal.WithLabelValues("8d", mode, outcome).Inc()
	s.log.Error("8d generation failed: "+msg, "err", err)
}

// Title builds the report title: "8D: " plus the first 50 characters of the
// problem description plus "...".
func Title(problem string) string {
	runes := []rune(problem)
	if len(runes) > titleRunes {
		runes = runes[:titleRunes]
	}
	return "8D: " + string(runes) + "..."
}
