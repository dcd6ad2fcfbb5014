package payrollhandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/payroll"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/structure", h.handleSubmitStructure)
		r.Get("/structures", h.handleAllStructures)
		r.Post("/payslips", h.handleStorePayslips)
		r.Get("/payslips", h.handleAllPayslips)
		r.Get("/payslips/{payslipID}/pdf", h.handlePayslipPDF)
	})
}

func (h *Handler) handleSubmitStructure(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload payroll.Structure
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	stored, err := h.Service.SubmitStructure(r.Context(), payload)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, stored, reqID)
}

func (h *Handler) handleAllStructures(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	structures, err := h.Service.AllStructures(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, structures, reqID)
}

func (h *Handler) handleStorePayslips(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload []payroll.Payslip
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	stored, err := h.Service.StorePayslips(r.Context(), payload)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Created(w, stored, reqID)
}

func (h *Handler) handleAllPayslips(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payslips, err := h.Service.AllPayslips(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, payslips, reqID)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payslipID, err := strconv.ParseInt(chi.URLParam(r, "payslipID"), 10, 64)
	if err != nil || payslipID <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid payslip id", reqID)
		return
	}

	data, err := h.Service.RenderPayslipPDF(r.Context(), payslipID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%d.pdf", payslipID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
