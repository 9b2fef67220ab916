package shared

import (
	"encoding/json"
	"net/http"

	"flowcrm/platform/logger"
)

// SuccessResponse estrutura padrão para respostas de sucesso
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Success bool        `json:"success" example:"true"`
} // @name SuccessResponse

// ErrorResponse estrutura padrão para respostas de erro
type ErrorResponse struct {
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error" example:"Invalid request"`
	Success bool        `json:"success" example:"false"`
} // @name ErrorResponse

// HealthResponse resposta para health check
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"flowcrm"`
	Version string `json:"version,omitempty" example:"1.0.0"`
	Uptime  string `json:"uptime,omitempty" example:"2h30m15s"`
} // @name HealthResponse

// ResponseWriter utilitário para escrever respostas HTTP
type ResponseWriter struct {
	logger *logger.Logger
}

// NewResponseWriter cria nova instância do response writer
func NewResponseWriter(logger *logger.Logger) *ResponseWriter {
	return &ResponseWriter{
		logger: logger,
	}
}

// WriteSuccess escreve resposta de sucesso (200)
func (rw *ResponseWriter) WriteSuccess(w http.ResponseWriter, data interface{}, message ...string) {
	rw.writeJSON(w, http.StatusOK, NewSuccessResponse(data, message...))
}

// WriteCreated escreve resposta de criação (201)
func (rw *ResponseWriter) WriteCreated(w http.ResponseWriter, data interface{}, message ...string) {
	rw.writeJSON(w, http.StatusCreated, NewSuccessResponse(data, message...))
}

// WriteError escreve resposta de erro
func (rw *ResponseWriter) WriteError(w http.ResponseWriter, statusCode int, message string, details ...interface{}) {
	rw.writeJSON(w, statusCode, NewErrorResponse(message, details...))
}

// WriteBadRequest escreve resposta de bad request (400)
func (rw *ResponseWriter) WriteBadRequest(w http.ResponseWriter, message string, details ...interface{}) {
	rw.WriteError(w, http.StatusBadRequest, message, details...)
}

// WriteUnauthorized escreve resposta de não autorizado (401)
func (rw *ResponseWriter) WriteUnauthorized(w http.ResponseWriter, message string) {
	rw.WriteError(w, http.StatusUnauthorized, message)
}

// WriteNotFound escreve resposta de não encontrado (404)
func (rw *ResponseWriter) WriteNotFound(w http.ResponseWriter, message string) {
	rw.WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError escreve resposta de erro interno (500)
func (rw *ResponseWriter) WriteInternalError(w http.ResponseWriter, message string) {
	rw.WriteError(w, http.StatusInternalServerError, message)
}

// writeJSON escreve resposta JSON
func (rw *ResponseWriter) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		rw.logger.ErrorWithFields("Failed to encode JSON response", map[string]interface{}{
			"error":       err.Error(),
			"status_code": statusCode,
		})
	}
}

// NewSuccessResponse cria nova resposta de sucesso
func NewSuccessResponse(data interface{}, message ...string) *SuccessResponse {
	response := &SuccessResponse{
		Success: true,
		Data:    data,
	}

	if len(message) > 0 {
		response.Message = message[0]
	}

	return response
}

// NewErrorResponse cria nova resposta de erro
func NewErrorResponse(message string, details ...interface{}) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error:   message,
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return response
}

// NewHealthResponse cria nova resposta de health
func NewHealthResponse(service, version, uptime string) *HealthResponse {
	return &HealthResponse{
		Status:  "ok",
		Service: service,
		Version: version,
		Uptime:  uptime,
	}
}
