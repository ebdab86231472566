package render_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDetail(t *testing.T) {
	w := httptest.NewRecorder()
	render.Detail(w, http.StatusNotFound, "Report not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body render.DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Report not found", body.Detail)
}

func TestValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	render.ValidationErrors(w, []render.ValidationError{
		{Loc: []any{"body", "problem_description"}, Msg: "Field required", Type: "missing"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t,
		`{"detail":[{"loc":["body","problem_description"],"msg":"Field required","type":"missing"}]}`,
		w.Body.String())
}

func TestValidationErrors_NilRendersEmptyList(t *testing.T) {
	w := httptest.NewRecorder()
	render.ValidationErrors(w, nil)
	assert.JSONEq(t, `{"detail":[]}`, w.Body.String())
}
