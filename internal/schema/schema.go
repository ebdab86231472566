// Package schema defines the request and response envelopes of the HTTP API.
// Request types carry validator tags; handlers reject anything that fails
// them with a 422 before service code runs.
package schema

import "time"

const (
	DefaultIndustryContext = "Automotive"
	DefaultLanguage        = "en"
)

// EightDGenerationRequest is the body of POST /api/v1/generate-8d.
type EightDGenerationRequest struct {
	ProblemDescription *string `json:"problem_description" validate:"required"`
	IndustryContext    *string `json:"industry_context"`
	Language           *string `json:"language"`
}

// Industry returns the industry context, defaulting to Automotive.
func (r EightDGenerationRequest) Industry() string {
	if r.IndustryContext == nil {
		return DefaultIndustryContext
	}
	return *r.IndustryContext
}

// Lang returns the requested output language, defaulting to "en".
func (r EightDGenerationRequest) Lang() string {
	if r.Language == nil {
		return DefaultLanguage
	}
	return *r.Language
}

// EightDGenerationResponse is the generated 8D document plus the id of the
// persisted report.
type EightDGenerationResponse struct {
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
	ReportID           uint                `json:"report_id"`
}

// ReportFinalizationRequest is the body of PUT /api/v1/reports/{id}/finalize.
type ReportFinalizationRequest struct {
	TechnicalNotes *string `json:"technical_notes" validate:"required"`
}

// HSEAnalysisResponse is the result of an HSE image analysis.
type HSEAnalysisResponse struct {
	NonConformities   []string `json:"non_conformities"`
	CorrectiveActions []string `json:"corrective_actions"`
	ImagePath         string   `json:"image_path"`
}

// HSEReportCreate is the body of POST /api/v1/reports/hse.
type HSEReportCreate struct {
	ImagePath         *string  `json:"image_path" validate:"required"`
	NonConformities   []string `json:"non_conformities" validate:"required"`
	UserObservations  *string  `json:"user_observations"`
	CorrectiveActions []string `json:"corrective_actions" validate:"required"`
	Status            *string  `json:"status"`
}

// Observations returns the user observations, defaulting to "".
func (r HSEReportCreate) Observations() string {
	if r.UserObservations == nil {
		return ""
	}
	return *r.UserObservations
}

// StatusOrDraft returns the requested status, defaulting to "draft".
func (r HSEReportCreate) StatusOrDraft() string {
	if r.Status == nil {
		return "draft"
	}
	return *r.Status
}

// ReportSummary is one entry of GET /api/v1/reports.
type ReportSummary struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	ProblemDescription string    `json:"problem_description"`
}

// ReportDetail is the body of GET /api/v1/reports/{id}.
type ReportDetail struct {
	ReportID           uint                `json:"report_id"`
	ProblemDescription string              `json:"problem_description"`
	D3InterimActions   []string            `json:"d3_interim_actions"`
	D4RootCauses       []string            `json:"d4_root_causes"`
	D4OccurrenceCauses []string            `json:"d4_occurrence_causes"`
	D4EscapeCauses     []string            `json:"d4_escape_causes"`
	D4Fishbone         map[string][]string `json:"d4_fishbone"`
}

// DashboardStats is the body of GET /api/v1/reports/stats.
type DashboardStats struct {
	TotalReports     int64 `json:"total_reports"`
	OpenIssues       int64 `json:"open_issues"`
	PendingApprovals int64 `json:"pending_approvals"`
}

// StatusResponse acknowledges a mutation.
type StatusResponse struct {
	Status   string `json:"status"`
	ReportID uint   `json:"report_id"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
