package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/domain"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// handleError maps domain errors to status codes. Anything unknown is logged
// and answered with a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		render.Detail(w, http.StatusNotFound, "Report not found")
	case errors.Is(err, domain.ErrReportFinalized):
		render.Detail(w, http.StatusBadRequest, "Report is already finalized")
	case errors.Is(err, domain.ErrInvalidCredentials):
		render.Detail(w, http.StatusUnauthorized, "Incorrect email or password")
	default:
		log.ErrorContext(r.Context(), "request failed",
			"error", err,
			"path", r.URL.Path,
			"requestID", chimw.GetReqID(r.Context()),
		)
		render.Detail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// reportID parses the {id} path parameter. It writes the 422 or 404 response
// itself and returns false when the request cannot continue.
func reportID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	n, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render.ValidationErrors(w, []render.ValidationError{{
			Loc:  []any{"path", "id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		}})
		return 0, false
	}
	if n <= 0 {
		render.Detail(w, http.StatusNotFound, "Report not found")
		return 0, false
	}
	return uint(n), true
}
