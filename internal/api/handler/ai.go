package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/d9705996/kysai/internal/api/middleware"
	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/schema"
	"github.com/d9705996/kysai/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AIHandler handles the generation endpoints.
type AIHandler struct {
	eightD         *service.EightDService
	hse            *service.HSEService
	maxUploadBytes int64
	log            *slog.Logger
}

func NewAIHandler(eightD *service.EightDService, hse *service.HSEService, maxUploadBytes int64, log *slog.Logger) *AIHandler {
	return &AIHandler{eightD: eightD, hse: hse, maxUploadBytes: maxUploadBytes, log: log}
}

// GenerateEightD handles POST /api/v1/generate-8d. Generation failures are
// reported as 500 with the error text as detail.
func (h *AIHandler) GenerateEightD(w http.ResponseWriter, r *http.Request) {
	var req schema.EightDGenerationRequest
	if errs := decodeJSON(r, &req); errs != nil {
		render.ValidationErrors(w, errs)
		return
	}

	resp, err := h.eightD.Generate(r.Context(), service.EightDInput{
		ProblemDescription: *req.ProblemDescription,
		IndustryContext:    req.Industry(),
		Language:           req.Lang(),
		Author:             service.AuthorFromClaims(middleware.ClaimsFromContext(r.Context())),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "Error calling AI service", "error", err, "requestID", chimw.GetReqID(r.Context()))
		render.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, http.StatusOK, resp)
}

// AnalyzeHSEImage handles POST /api/v1/analyze-hse-image. The multipart
// field "file" is required; analysis problems come back inside a 200 body.
func (h *AIHandler) AnalyzeHSEImage(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			render.Detail(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		render.ValidationErrors(w, []render.ValidationError{
			{Loc: []any{"body", "file"}, Msg: "Field required", Type: "missing"},
		})
		return
	}
	defer func() { _ = file.Close() }()

	resp := h.hse.Analyze(r.Context(), service.Upload{Filename: header.Filename, Body: file})
	render.JSON(w, http.StatusOK, resp)
}
