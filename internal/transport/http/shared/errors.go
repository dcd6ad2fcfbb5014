package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"ems/internal/domain/directory"
	"ems/internal/domain/leave"
	"ems/internal/domain/payroll"
	"ems/internal/domain/review"
	"ems/internal/transport/http/api"
)

// WriteDomainError maps domain sentinels onto the response envelope. Anything
// unrecognized is an internal failure and reaches the client as an opaque
// message.
func WriteDomainError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, directory.ErrInvalid),
		errors.Is(err, leave.ErrInvalid),
		errors.Is(err, review.ErrInvalid),
		errors.Is(err, payroll.ErrInvalid):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case errors.Is(err, directory.ErrNotFound),
		errors.Is(err, leave.ErrNotFound),
		errors.Is(err, leave.ErrEmployeeNotFound),
		errors.Is(err, review.ErrNotFound),
		errors.Is(err, payroll.ErrNotFound),
		errors.Is(err, payroll.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, directory.ErrBadCredentials):
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", requestID)
	default:
		slog.Error("operation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
