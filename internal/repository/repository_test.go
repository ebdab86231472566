package repository_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/d9705996/kysai/internal/config"
	"github.com/d9705996/kysai/internal/db"
	"github.com/d9705996/kysai/internal/domain"
	"github.com/d9705996/kysai/internal/model"
	"github.com/d9705996/kysai/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	h, err := db.New(context.Background(), &config.DBConfig{
		Driver: "sqlite",
		File:   filepath.Join(t.TempDir(), "kysai.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h.DB
}

func newReport(title, problem, status string) *model.QualityReport {
	return &model.QualityReport{
		Title:      title,
		ReportType: model.ReportTypeEightD,
		Status:     status,
		Data:       datatypes.NewJSONType(model.ReportData{ProblemDescription: problem}),
	}
}

func TestQualityReportRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQualityReportRepository(newTestDB(t))

	report := newReport("8D: cracked bolts...", "cracked bolts", model.StatusDraft)
	require.NoError(t, repo.Create(ctx, report))
	require.NotZero(t, report.ID)

	got, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "cracked bolts", got.Data.Data().ProblemDescription)
	assert.Equal(t, model.StatusDraft, got.Status)
}

func TestQualityReportRepository_FindByIDMissing(t *testing.T) {
	repo := repository.NewQualityReportRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestQualityReportRepository_ListOrderAndSearch(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQualityReportRepository(newTestDB(t))

	first := newReport("Paint defect", "orange peel on door panel", model.StatusDraft)
	second := newReport("Bolt failure", "hydrogen embrittlement", model.StatusDraft)
	third := newReport("Weld porosity", "gas pockets in seam", model.StatusFinalized)
	for _, r := range []*model.QualityReport{first, second, third} {
		require.NoError(t, repo.Create(ctx, r))
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, first.ID, all[2].ID)

	byTitle, err := repo.List(ctx, "Bolt")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, second.ID, byTitle[0].ID)

	byProblem, err := repo.List(ctx, "door panel")
	require.NoError(t, err)
	require.Len(t, byProblem, 1)
	assert.Equal(t, first.ID, byProblem[0].ID)

	none, err := repo.List(ctx, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQualityReportRepository_Finalize(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQualityReportRepository(newTestDB(t))

	report := newReport("8D: leak...", "leak", model.StatusDraft)
	require.NoError(t, repo.Create(ctx, report))

	require.NoError(t, repo.Finalize(ctx, report.ID, "torque values revised"))

	got, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinalized, got.Status)
	require.NotNil(t, got.Data.Data().TechnicalNotes)
	assert.Equal(t, "torque values revised", *got.Data.Data().TechnicalNotes)
	assert.Equal(t, "leak", got.Data.Data().ProblemDescription)

	err = repo.Finalize(ctx, report.ID, "again")
	assert.ErrorIs(t, err, domain.ErrReportFinalized)

	err = repo.Finalize(ctx, report.ID+100, "missing")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestQualityReportRepository_FinalizeKeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	repo := repository.NewQualityReportRepository(gormDB)

	report := newReport("5S: line 3", "p", model.StatusDraft)
	report.ReportType = model.ReportTypeFiveS
	require.NoError(t, repo.Create(ctx, report))
	require.NoError(t, gormDB.Model(&model.QualityReport{}).
		Where("id = ?", report.ID).
		Update("data", datatypes.JSON(`{"problem_description":"p","sort_findings":["a"],"score":4.5}`)).Error)

	require.NoError(t, repo.Finalize(ctx, report.ID, "notes"))

	var row struct{ Data datatypes.JSON }
	require.NoError(t, gormDB.Model(&model.QualityReport{}).Select("data").Where("id = ?", report.ID).Scan(&row).Error)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(row.Data, &stored))
	assert.Equal(t, map[string]any{
		"problem_description": "p",
		"sort_findings":       []any{"a"},
		"score":               4.5,
		"technical_notes":     "notes",
	}, stored)
}

func TestQualityReportRepository_Counts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQualityReportRepository(newTestDB(t))

	for _, status := range []string{model.StatusDraft, model.StatusDraft, model.StatusApproved} {
		require.NoError(t, repo.Create(ctx, newReport("r", "p", status)))
	}

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	drafts, err := repo.CountByStatus(ctx, model.StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, int64(2), drafts)
}

func TestHSEReportRepository_Create(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	repo := repository.NewHSEReportRepository(gormDB)

	report := &model.HSEReport{
		ImagePath:         "/static/uploads/hse_1.jpg",
		NonConformities:   datatypes.JSONSlice[string]{"No helmet"},
		CorrectiveActions: datatypes.JSONSlice[string]{},
		Status:            model.StatusDraft,
	}
	require.NoError(t, repo.Create(ctx, report))
	require.NotZero(t, report.ID)

	var got model.HSEReport
	require.NoError(t, gormDB.First(&got, report.ID).Error)
	assert.Equal(t, []string{"No helmet"}, []string(got.NonConformities))
	assert.Empty(t, got.CorrectiveActions)
}

func TestUserAndOrganizationRepositories(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := repository.NewUserRepository(gormDB)
	orgs := repository.NewOrganizationRepository(gormDB)

	org, err := orgs.FirstOrCreate(ctx, "KYSAI")
	require.NoError(t, err)
	again, err := orgs.FirstOrCreate(ctx, "KYSAI")
	require.NoError(t, err)
	assert.Equal(t, org.ID, again.ID)

	_, err = users.FindByEmail(ctx, "nobody@kysai.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, users.Create(ctx, &model.User{
		Email:          "qa@kysai.com",
		HashedPassword: "x",
		Role:           model.RoleManager,
		OrganizationID: &org.ID,
	}))
	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	u, err := users.FindByEmail(ctx, "qa@kysai.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, u.Role)
	require.NotNil(t, u.OrganizationID)
	assert.Equal(t, org.ID, *u.OrganizationID)
}
