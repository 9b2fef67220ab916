package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewWithDetails(code int, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

var (
	ErrBadRequest          = New(http.StatusBadRequest, "Bad request")
	ErrUnauthorized        = New(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden           = New(http.StatusForbidden, "Forbidden")
	ErrNotFound            = New(http.StatusNotFound, "Not found")
	ErrConflict            = New(http.StatusConflict, "Conflict")
	ErrInternalServerError = New(http.StatusInternalServerError, "Internal server error")

	ErrMissingWorkspaceID = New(http.StatusBadRequest, "Missing workspace_id")
	ErrMissingFields      = New(http.StatusBadRequest, "Missing required fields: contact and message.content")
	ErrMissingPhone       = New(http.StatusBadRequest, "Phone number is required for WhatsApp contacts")

	ErrWorkspaceNotFound   = New(http.StatusNotFound, "Workspace not found")
	ErrIntegrationInactive = New(http.StatusForbidden, "Chat integration is not active for this workspace")
	ErrAutoCreateDisabled  = New(http.StatusNotFound, "Contact not found and auto-create is disabled")

	ErrContactNotFound    = New(http.StatusNotFound, "Contact not found")
	ErrMessageNotFound    = New(http.StatusNotFound, "Message not found")
	ErrInvalidContactData = New(http.StatusBadRequest, "Invalid contact data")
)

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewWithDetails(http.StatusInternalServerError, "Internal server error", err.Error())
}
