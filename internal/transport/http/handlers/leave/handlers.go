package leavehandler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/leave"
	"ems/internal/domain/notifications"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

const maxAttachmentBytes = 5 * 1024 * 1024

type Handler struct {
	Service *leave.Service
	Notify  *notifications.Service
	Lookup  leave.DirectoryAPI
}

func NewHandler(service *leave.Service, notify *notifications.Service, lookup leave.DirectoryAPI) *Handler {
	return &Handler{Service: service, Notify: notify, Lookup: lookup}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Post("/", h.handleApply)
		r.Get("/history", h.handleAllHistory)
		r.Get("/history/{employeeID}", h.handleHistory)
		r.Post("/{leaveID}/cancel", h.handleCancel)
		r.Patch("/{leaveID}/status", h.handleChangeStatus)
	})
}

type applyRequest struct {
	EmployeeID int64  `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload applyRequest
	var attachment []byte

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAttachmentBytes); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart form", reqID)
			return
		}
		employeeID, err := strconv.ParseInt(r.FormValue("employeeId"), 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "invalid employeeId", reqID)
			return
		}
		payload = applyRequest{
			EmployeeID: employeeID,
			LeaveType:  r.FormValue("leaveType"),
			StartDate:  r.FormValue("startDate"),
			EndDate:    r.FormValue("endDate"),
			Reason:     r.FormValue("reason"),
		}
		if file, _, err := r.FormFile("attachment"); err == nil {
			defer file.Close()
			attachment, err = io.ReadAll(io.LimitReader(file, maxAttachmentBytes))
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "internal_error", "failed to read attachment", reqID)
				return
			}
		}
	} else if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	record, err := h.Service.Apply(r.Context(), payload.EmployeeID, payload.LeaveType,
		payload.StartDate, payload.EndDate, payload.Reason, attachment)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Created(w, record, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || employeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid employee id", reqID)
		return
	}

	history, err := h.Service.History(r.Context(), employeeID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, history, reqID)
}

func (h *Handler) handleAllHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, err := h.Service.AllHistory(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveID"), 10, 64)
	if err != nil || leaveID <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid leave id", reqID)
		return
	}

	history, err := h.Service.Cancel(r.Context(), leaveID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, history, reqID)
}

type changeStatusRequest struct {
	ActionType string `json:"actionType"`
}

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveID"), 10, 64)
	if err != nil || leaveID <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid leave id", reqID)
		return
	}

	var payload changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	record, err := h.Service.ChangeStatus(r.Context(), leaveID, payload.ActionType)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	h.notifyStatusChange(r, record)
	api.Success(w, record, reqID)
}

// notifyStatusChange mails the employee about the decision. Delivery is
// fire-and-forget and a missing address is simply skipped.
func (h *Handler) notifyStatusChange(r *http.Request, record *leave.Leave) {
	if h.Notify == nil || h.Lookup == nil {
		return
	}
	info, err := h.Lookup.Lookup(r.Context(), record.EmployeeID)
	if err != nil || info.OfficialEmail == "" {
		return
	}
	subject := fmt.Sprintf("Leave request %s", strings.ToLower(record.Status))
	body := fmt.Sprintf("<p>Your %s leave from %s to %s is now %s.</p>",
		record.LeaveType,
		record.StartDate.Format("2006-01-02"),
		record.EndDate.Format("2006-01-02"),
		record.Status)
	h.Notify.Dispatch(info.OfficialEmail, subject, body)
}
