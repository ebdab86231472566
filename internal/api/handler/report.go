package handler

import (
	"log/slog"
	"net/http"

	"github.com/d9705996/kysai/internal/api/middleware"
	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/schema"
	"github.com/d9705996/kysai/internal/service"
)

// ReportHandler handles /api/v1/reports routes.
type ReportHandler struct {
	reports *service.ReportService
	log     *slog.Logger
}

func NewReportHandler(reports *service.ReportService, log *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// List handles GET /api/v1/reports?search=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.reports.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}
	out, err := h.reports.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, out)
}

// Finalize handles PUT /api/v1/reports/{id}/finalize.
func (h *ReportHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}
	var req schema.ReportFinalizationRequest
	if errs := decodeJSON(r, &req); errs != nil {
		render.ValidationErrors(w, errs)
		return
	}
	out, err := h.reports.Finalize(r.Context(), id, *req.TechnicalNotes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, out)
}

// Stats handles GET /api/v1/reports/stats.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	out, err := h.reports.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, out)
}

// CreateHSE handles POST /api/v1/reports/hse.
func (h *ReportHandler) CreateHSE(w http.ResponseWriter, r *http.Request) {
	var req schema.HSEReportCreate
	if errs := decodeJSON(r, &req); errs != nil {
		render.ValidationErrors(w, errs)
		return
	}
	author := service.AuthorFromClaims(middleware.ClaimsFromContext(r.Context()))
	out, err := h.reports.CreateHSE(r.Context(), req, author)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, out)
}
