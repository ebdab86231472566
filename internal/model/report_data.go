package model

// ReportData is the document stored in quality_reports.data for 8D reports.
//
// problem_description is always written at creation. Every other key is
// optional: lists default to empty, d4_fishbone to an empty mapping and
// d2_problem to the problem description. technical_notes appears once the
// report is finalized.
type ReportData struct {
	ProblemDescription string              `json:"problem_description"`
	D1Team             []string            `json:"d1_team"`
	D2Problem          string              `json:"d2_problem"`
	D3InterimActions   []string            `json:"d3_interim_actions"`
	D4RootCauses       []string            `json:"d4_root_causes"`
	D4OccurrenceCauses []string            `json:"d4_occurrence_causes"`
	D4EscapeCauses     []string            `json:"d4_escape_causes"`
	D4Fishbone         map[string][]string `json:"d4_fishbone"`
	D5ChosenPCA        []string            `json:"d5_chosen_pca"`
	D6ImplementedPCA   []string            `json:"d6_implemented_pca"`
	D7Prevention       []string            `json:"d7_prevention"`
	D8Recognition      []string            `json:"d8_recognition"`
	TechnicalNotes     *string             `json:"technical_notes,omitempty"`
}

// Normalize applies the read-side defaults so callers never see nil lists or
// a nil fishbone mapping.
func (d ReportData) Normalize() ReportData {
	d.D1Team = orEmpty(d.D1Team)
	d.D3InterimActions = orEmpty(d.D3InterimActions)
	d.D4RootCauses = orEmpty(d.D4RootCauses)
	d.D4OccurrenceCauses = orEmpty(d.D4OccurrenceCauses)
	d.D4EscapeCauses = orEmpty(d.D4EscapeCauses)
	d.D5ChosenPCA = orEmpty(d.D5ChosenPCA)
	d.D6ImplementedPCA = orEmpty(d.D6ImplementedPCA)
	d.D7Prevention = orEmpty(d.D7Prevention)
	d.D8Recognition = orEmpty(d.D8Recognition)
	if d.D4Fishbone == nil {
		d.D4Fishbone = map[string][]string{}
	}
	return d
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
