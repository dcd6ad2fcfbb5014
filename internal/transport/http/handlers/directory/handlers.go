package directoryhandler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/directory"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

const maxDocumentBytes = 5 * 1024 * 1024

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", h.handleAdd)
		r.Get("/", h.handleList)
		r.Patch("/field", h.handleUpdateField)
		r.Patch("/status", h.handleUpdateStatus)
		r.Get("/{employeeID}", h.handleGet)
		r.Delete("/{employeeID}", h.handleSoftDelete)
		r.Get("/{employeeID}/subordinates", h.handleSubordinates)
		r.Post("/{employeeID}/document", h.handleUploadDocument)
		r.Get("/{employeeID}/document", h.handleDownloadDocument)
		r.Post("/{employeeID}/photo", h.handleUploadPhoto)
		r.Get("/{employeeID}/photo", h.handleDownloadPhoto)
	})
}

type addEmployeeRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	MobileNumber    string  `json:"mobileNumber"`
	AlternateMobile string  `json:"alternateMobileNumber"`
	Status          string  `json:"status"`
	Password        string  `json:"password"`
	DateOfJoining   string  `json:"dateOfJoining"`
	Salary          float64 `json:"salary"`
	EmailID         string  `json:"emailId"`
	Role            string  `json:"role"`
	ManagerID       *int64  `json:"managerId"`
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload addEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp := directory.Employee{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		MobileNumber:    payload.MobileNumber,
		AlternateMobile: payload.AlternateMobile,
		Status:          payload.Status,
		Salary:          payload.Salary,
		EmailID:         payload.EmailID,
		Role:            payload.Role,
		ManagerID:       payload.ManagerID,
	}
	if payload.DateOfJoining != "" {
		parsed, err := shared.ParseDate(payload.DateOfJoining)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "dateOfJoining must be a valid date", reqID)
			return
		}
		emp.DateOfJoining = &parsed
	}

	created, err := h.Service.Create(r.Context(), emp, payload.Password)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Created(w, created.Info(), reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employees, err := h.Service.List(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	out := make([]directory.Info, 0, len(employees))
	for _, emp := range employees {
		out = append(out, emp.Info())
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, emp.Info(), reqID)
}

type updateFieldRequest struct {
	Email     string `json:"email"`
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

func (h *Handler) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.Service.UpdateField(r.Context(), payload.Email, payload.FieldName, payload.Value)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, emp.Info(), reqID)
}

type updateStatusRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.Service.UpdateStatus(r.Context(), payload.Email, payload.Status)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, emp.Info(), reqID)
}

func (h *Handler) handleSoftDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	if err := h.Service.SoftDelete(r.Context(), id); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"message": "employee marked as exiting"}, reqID)
}

func (h *Handler) handleSubordinates(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	subs, err := h.Service.Subordinates(r.Context(), id)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	out := make([]directory.Info, 0, len(subs))
	for _, emp := range subs {
		out = append(out, emp.Info())
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	data, ok := readUpload(w, r, "document", reqID)
	if !ok {
		return
	}
	if _, err := h.Service.SetDocument(r.Context(), emp.EmailID, data); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"message": "document stored"}, reqID)
}

func (h *Handler) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	data, err := h.Service.Document(r.Context(), id)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	data, ok := readUpload(w, r, "photo", reqID)
	if !ok {
		return
	}
	if _, err := h.Service.SetProfilePic(r.Context(), id, data); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"message": "photo stored"}, reqID)
}

func (h *Handler) handleDownloadPhoto(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}
	data, err := h.Service.ProfilePic(r.Context(), id)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func parseID(w http.ResponseWriter, r *http.Request, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid employee id", reqID)
		return 0, false
	}
	return id, true
}

func readUpload(w http.ResponseWriter, r *http.Request, field, reqID string) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "expected multipart form upload", reqID)
		return nil, false
	}
	file, _, err := r.FormFile(field)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "missing file field "+field, reqID)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "failed to read upload", reqID)
		return nil, false
	}
	return data, true
}
