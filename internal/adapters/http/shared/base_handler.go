package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flowcrm/internal/services/shared/validation"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// BaseHandler fornece funcionalidades comuns para todos os handlers HTTP
type BaseHandler struct {
	logger    *logger.Logger
	writer    *ResponseWriter
	validator *validation.Validator
}

// NewBaseHandler cria nova instância do base handler
func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger:    logger,
		writer:    NewResponseWriter(logger),
		validator: validation.New(),
	}
}

// GetLogger retorna logger do handler
func (h *BaseHandler) GetLogger() *logger.Logger {
	return h.logger
}

// GetWriter retorna response writer
func (h *BaseHandler) GetWriter() *ResponseWriter {
	return h.writer
}

// GetValidator retorna validator
func (h *BaseHandler) GetValidator() *validation.Validator {
	return h.validator
}

// ===== URL PARAMETER EXTRACTION =====

// GetUUIDParam extrai parâmetro UUID da URL
func (h *BaseHandler) GetUUIDParam(r *http.Request, paramName string) (uuid.UUID, error) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required", paramName)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format: %w", paramName, err)
	}

	return id, nil
}

// GetWorkspaceIDFromURL extrai workspace ID da URL
func (h *BaseHandler) GetWorkspaceIDFromURL(r *http.Request) (uuid.UUID, error) {
	return h.GetUUIDParam(r, "workspaceId")
}

// GetContactIDFromURL extrai contact ID da URL
func (h *BaseHandler) GetContactIDFromURL(r *http.Request) (uuid.UUID, error) {
	return h.GetUUIDParam(r, "contactId")
}

// ===== QUERY PARAMETER EXTRACTION =====

// GetQueryString extrai parâmetro string da query
func (h *BaseHandler) GetQueryString(r *http.Request, paramName string, defaultValue ...string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetQueryInt extrai parâmetro int da query
func (h *BaseHandler) GetQueryInt(r *http.Request, paramName string, defaultValue ...int) (int, error) {
	valueStr := r.URL.Query().Get(paramName)
	if valueStr == "" {
		if len(defaultValue) > 0 {
			return defaultValue[0], nil
		}
		return 0, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %w", paramName, err)
	}

	return value, nil
}

// ===== REQUEST BODY PARSING =====

// ParseJSONBody faz parse do body JSON para struct
func (h *BaseHandler) ParseJSONBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ===== PAGINATION HELPERS =====

// GetPaginationParams extrai parâmetros de paginação da query
func (h *BaseHandler) GetPaginationParams(r *http.Request) (limit, offset int, err error) {
	limit, err = h.GetQueryInt(r, "limit", 20)
	if err != nil {
		return 0, 0, err
	}

	offset, err = h.GetQueryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}

	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}

// ===== ERROR HANDLING =====

// HandleError processa erro e escreve resposta apropriada
func (h *BaseHandler) HandleError(w http.ResponseWriter, err error, operation string) {
	h.logger.ErrorWithFields(fmt.Sprintf("Failed to %s", operation), map[string]interface{}{
		"error": err.Error(),
	})

	appErr := apperrors.GetAppError(err)
	if appErr.Details != "" {
		h.writer.WriteError(w, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	h.writer.WriteError(w, appErr.Code, appErr.Message)
}

// ===== LOGGING HELPERS =====

// LogRequest registra informações da requisição
func (h *BaseHandler) LogRequest(r *http.Request, operation string) {
	h.logger.InfoWithFields(fmt.Sprintf("Processing %s request", operation), map[string]interface{}{
		"method":     r.Method,
		"path":       r.URL.Path,
		"query":      r.URL.RawQuery,
		"user_agent": r.Header.Get("User-Agent"),
		"ip":         GetClientIP(r),
	})
}

// LogSuccess registra sucesso da operação
func (h *BaseHandler) LogSuccess(operation string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation

	h.logger.InfoWithFields(fmt.Sprintf("%s completed successfully", operation), details)
}

// ===== UTILITY FUNCTIONS =====

// GetClientIP extrai IP do cliente
func GetClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
