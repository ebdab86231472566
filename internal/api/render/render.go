// Package render writes JSON responses using the FastAPI-compatible error
// envelopes the frontend expects: {"detail": "..."} for plain errors and
// {"detail": [{loc, msg, type}]} for validation failures.
package render

import (
	"encoding/json"
	"net/http"
)

const contentType = "application/json"

// DetailResponse is the body of every non-validation error.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ValidationError describes one rejected input. Loc is the path to the
// offending value, e.g. ["body", "problem_description"] or ["path", "id"].
type ValidationError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ValidationResponse is the body of a 422 response.
type ValidationResponse struct {
	Detail []ValidationError `json:"detail"`
}

// JSON writes v to w with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes a {"detail": msg} error.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, DetailResponse{Detail: msg})
}

// ValidationErrors writes a 422 with the given errors.
func ValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	if errs == nil {
		errs = []ValidationError{}
	}
	JSON(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: errs})
}
