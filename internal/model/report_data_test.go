package model_test

import (
	"testing"

	"github.com/d9705996/kysai/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReportData_NormalizeFillsDefaults(t *testing.T) {
	d := model.ReportData{ProblemDescription: "cracked bolts"}.Normalize()

	assert.Equal(t, "cracked bolts", d.ProblemDescription)
	assert.NotNil(t, d.D1Team)
	assert.Empty(t, d.D1Team)
	assert.NotNil(t, d.D3InterimActions)
	assert.NotNil(t, d.D4RootCauses)
	assert.NotNil(t, d.D4OccurrenceCauses)
	assert.NotNil(t, d.D4EscapeCauses)
	assert.NotNil(t, d.D5ChosenPCA)
	assert.NotNil(t, d.D6ImplementedPCA)
	assert.NotNil(t, d.D7Prevention)
	assert.NotNil(t, d.D8Recognition)
	assert.NotNil(t, d.D4Fishbone)
	assert.Nil(t, d.TechnicalNotes)
}

func TestReportData_NormalizeKeepsValues(t *testing.T) {
	d := model.ReportData{
		D3InterimActions: []string{"Quarantine"},
		D4Fishbone:       map[string][]string{"Man": {"late load"}},
	}.Normalize()

	assert.Equal(t, []string{"Quarantine"}, d.D3InterimActions)
	assert.Equal(t, map[string][]string{"Man": {"late load"}}, d.D4Fishbone)
}
