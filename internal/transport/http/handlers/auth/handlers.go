package authhandler

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/auth"
	"ems/internal/domain/directory"
	"ems/internal/domain/notifications"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	Directory *directory.Service
	Notify    *notifications.Service
	JWTSecret string
}

func NewHandler(dir *directory.Service, notify *notifications.Service, jwtSecret string) *Handler {
	return &Handler{Directory: dir, Notify: notify, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/forgotPassword", h.handleForgotPassword)
		r.Post("/resetPassword", h.handleResetPassword)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.Directory.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		EmployeeID: emp.ID,
		Email:      emp.OfficialEmail,
		Role:       emp.Role,
	}, tokenTTL)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	api.Success(w, map[string]any{
		"token":    token,
		"employee": emp.Info(),
	}, reqID)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.Directory.GetByOfficialEmail(r.Context(), payload.Email)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	otp := rand.Intn(10000)
	h.Notify.SendPasswordOTP(emp.OfficialEmail, otp)
	api.Success(w, map[string]int{"otp": otp}, reqID)
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Directory.ResetPassword(r.Context(), payload.Email, payload.Password); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"message": "password updated"}, reqID)
}
