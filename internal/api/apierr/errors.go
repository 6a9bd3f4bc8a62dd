package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/chat"
	"github.com/gearhub/gearhub/internal/services/notes"
	"github.com/gearhub/gearhub/internal/services/session"
	"github.com/gearhub/gearhub/internal/services/timetable"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNoSession       = "NO_ACTIVE_SESSION"
	CodeProfileNotFound = "PROFILE_NOT_FOUND"
	CodeRoleAlreadySet  = "ROLE_ALREADY_SET"
	CodeInvalidRole     = "INVALID_ROLE"
	CodeNoteNotFound    = "NOTE_NOT_FOUND"
	CodeNotAuthor       = "NOT_AUTHOR"
	CodeSlotNotFound    = "SLOT_NOT_FOUND"
	CodeInvalidDay      = "INVALID_DAY"
	CodeGradeNotFound   = "GRADE_NOT_FOUND"
	CodeInvalidScore    = "INVALID_SCORE"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrNoActiveSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeNoSession, "No active session"}}
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrRoleAlreadySet):
		return &httpError{http.StatusConflict, APIError{CodeRoleAlreadySet, "Role has already been chosen"}}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRole, "Role must be student, teacher or admin"}}
	case errors.Is(err, model.ErrForbidden):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Your role does not permit this action"}}
	case errors.Is(err, model.ErrNoteNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNoteNotFound, "Note not found"}}
	case errors.Is(err, model.ErrNotAuthor):
		return &httpError{http.StatusForbidden, APIError{CodeNotAuthor, "Only the author can do this"}}
	case errors.Is(err, model.ErrSlotNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSlotNotFound, "Timetable slot not found"}}
	case errors.Is(err, model.ErrInvalidDay):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDay, "Day must be a full English day name"}}
	case errors.Is(err, model.ErrGradeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGradeNotFound, "Grade not found"}}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScore, "Score must be between 0 and total"}}

	// Map service validation errors
	case errors.Is(err, session.ErrEmailRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "email is required"}}
	case errors.Is(err, session.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "name is required"}}
	case errors.Is(err, notes.ErrTitleRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "title is required"}}
	case errors.Is(err, timetable.ErrSubjectRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "subject is required"}}
	case errors.Is(err, chat.ErrEmptyMessage):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "message text is empty"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeNoSession, "No active session"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Your role does not permit this action"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
