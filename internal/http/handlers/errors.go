// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes the symbolic error code constants that are mapped to
// HTTP responses via the fail() helper, plus the translation from service
// sentinel errors to (status, code) pairs. The codes give clients a stable,
// machine-readable taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes (bad_request, unauthorized, conflict, ...) mirror common
//     HTTP status semantics.
//   - Domain-specific codes cover business outcomes a status alone cannot
//     convey (invalid_credentials, email_taken, invalid_status).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/services"
)

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodeInvalidStatus      = "invalid_status"
	ErrCodeInvalidRole        = "invalid_role"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)

// failService translates a service-layer error into the standard error
// envelope. Sentinels map to specific statuses and codes; anything unknown is
// reported as an internal error without leaking its message to the client.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "admin access required")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid email or password")
	case errors.Is(err, services.ErrEmailTaken):
		fail(c, http.StatusConflict, ErrCodeEmailTaken, "email already registered")
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, services.ErrQuestionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "question not found")
	case errors.Is(err, services.ErrAnswerNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "answer not found")
	case errors.Is(err, services.ErrEmptyTitle):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title must not be empty")
	case errors.Is(err, services.ErrEmptyDescription):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "description must not be empty")
	case errors.Is(err, services.ErrEmptyContent):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content must not be empty")
	case errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidStatus, "illegal status transition")
	case errors.Is(err, services.ErrInvalidRole):
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidRole, "unknown role")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
