package errors

import (
	"errors"
	"fmt"
)

// Erros comuns do domínio
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternal      = errors.New("internal error")
)

// Erros específicos do CRM
var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrMessageNotFound   = errors.New("message not found")
	ErrSettingsNotFound  = errors.New("chat settings not found")
)

// DomainError representa um erro de domínio
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError cria um novo erro de domínio
func NewDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
