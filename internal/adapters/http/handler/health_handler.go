package handler

import (
	"net/http"
	"time"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/platform/database"
	"flowcrm/platform/logger"
)

// HealthHandler implementa o endpoint de health check
type HealthHandler struct {
	*shared.BaseHandler
	db        *database.Database
	startedAt time.Time
	version   string
}

// NewHealthHandler cria nova instância do handler de health
func NewHealthHandler(db *database.Database, version string, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: shared.NewBaseHandler(logger),
		db:          db,
		startedAt:   time.Now(),
		version:     version,
	}
}

// Check retorna o status do serviço
// @Summary Health check
// @Description Returns service status and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} shared.HealthResponse
// @Failure 503 {object} shared.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.GetLogger().WithError(err).Error("Database health check failed")
		h.GetWriter().WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	uptime := time.Since(h.startedAt).Round(time.Second).String()
	response := shared.NewHealthResponse("flowcrm", h.version, uptime)

	h.GetWriter().WriteSuccess(w, response)
}
