package handler

import (
	"net/http"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/internal/services"
	"flowcrm/platform/logger"
)

// WorkspaceHandler implementa handlers REST para workspaces
type WorkspaceHandler struct {
	*shared.BaseHandler
	workspaceService *services.WorkspaceService
}

// NewWorkspaceHandler cria nova instância do handler de workspaces
func NewWorkspaceHandler(workspaceService *services.WorkspaceService, logger *logger.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		BaseHandler:      shared.NewBaseHandler(logger),
		workspaceService: workspaceService,
	}
}

// GetWorkspace retorna um workspace pelo ID
// @Summary Get workspace
// @Tags Workspaces
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} shared.SuccessResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId} [get]
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Workspace not found")
		return
	}

	ws, err := h.workspaceService.GetWorkspace(r.Context(), workspaceID)
	if err != nil {
		h.HandleError(w, err, "get workspace")
		return
	}

	h.GetWriter().WriteSuccess(w, ws)
}
