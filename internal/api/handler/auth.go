package handler

import (
	"log/slog"
	"net/http"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/schema"
	"github.com/d9705996/kysai/internal/service"
)

// AuthHandler handles /api/v1/auth/* routes.
type AuthHandler struct {
	auth *service.AuthService
	log  *slog.Logger
}

func NewAuthHandler(auth *service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req schema.LoginRequest
	if errs := decodeJSON(r, &req); errs != nil {
		render.ValidationErrors(w, errs)
		return
	}
	tok, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	render.JSON(w, http.StatusOK, tok)
}
