package reviewhandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/review"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *review.Service
}

func NewHandler(service *review.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.handleAllWithNames)
		r.Post("/cycle", h.handleStartCycle)
		r.Put("/", h.handleUpdate)
		r.Get("/latest/{employeeID}", h.handleLatest)
		r.Get("/employee/{employeeID}", h.handleList)
		r.Post("/{reviewID}/acknowledge", h.handleAcknowledge)
	})
}

type startCycleRequest struct {
	EmployeeIDs []int64 `json:"employeeIds"`
	PeriodStart string  `json:"reviewPeriodStart"`
	PeriodEnd   string  `json:"reviewPeriodEnd"`
}

func (h *Handler) handleStartCycle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload startCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	count, err := h.Service.StartCycle(r.Context(), payload.EmployeeIDs, payload.PeriodStart, payload.PeriodEnd)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Created(w, map[string]any{"message": "review cycle initiated", "created": count}, reqID)
}

type updateReviewRequest struct {
	ReviewID      int64  `json:"reviewId"`
	ReviewerID    int64  `json:"reviewerId"`
	PeriodStart   string `json:"reviewPeriodStart"`
	PeriodEnd     string `json:"reviewPeriodEnd"`
	GoalsAchieved *int   `json:"goalsAchieved"`
	Communication *int   `json:"communication"`
	Technical     *int   `json:"technicalSkills"`
	Teamwork      *int   `json:"teamwork"`
	Leadership    *int   `json:"leadership"`
	Punctuality   *int   `json:"punctuality"`
	Comments      string `json:"comments"`
	Status        string `json:"status"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	incoming := review.Review{
		ID:            payload.ReviewID,
		ReviewerID:    payload.ReviewerID,
		GoalsAchieved: payload.GoalsAchieved,
		Communication: payload.Communication,
		Technical:     payload.Technical,
		Teamwork:      payload.Teamwork,
		Leadership:    payload.Leadership,
		Punctuality:   payload.Punctuality,
		Comments:      payload.Comments,
		Status:        payload.Status,
	}
	if payload.PeriodStart != "" {
		parsed, err := shared.ParseDate(payload.PeriodStart)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "reviewPeriodStart must be a valid date", reqID)
			return
		}
		incoming.PeriodStart = parsed
	}
	if payload.PeriodEnd != "" {
		parsed, err := shared.ParseDate(payload.PeriodEnd)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "reviewPeriodEnd must be a valid date", reqID)
			return
		}
		incoming.PeriodEnd = parsed
	}

	updated, err := h.Service.Update(r.Context(), incoming)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, ok := parseID(w, r, "employeeID", reqID)
	if !ok {
		return
	}
	record, err := h.Service.Latest(r.Context(), employeeID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, record, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, ok := parseID(w, r, "employeeID", reqID)
	if !ok {
		return
	}
	records, err := h.Service.List(r.Context(), employeeID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	reviewID, ok := parseID(w, r, "reviewID", reqID)
	if !ok {
		return
	}
	record, err := h.Service.Acknowledge(r.Context(), reviewID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, record, reqID)
}

func (h *Handler) handleAllWithNames(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	records, err := h.Service.AllWithNames(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func parseID(w http.ResponseWriter, r *http.Request, param, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid "+param, reqID)
		return 0, false
	}
	return id, true
}
