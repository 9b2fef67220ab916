package handler

import (
	"net/http"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/internal/services"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/platform/logger"
)

// SettingsHandler implementa handlers REST para configurações de chat
type SettingsHandler struct {
	*shared.BaseHandler
	settingsService *services.SettingsService
}

// NewSettingsHandler cria nova instância do handler de configurações
func NewSettingsHandler(settingsService *services.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     shared.NewBaseHandler(logger),
		settingsService: settingsService,
	}
}

// GetSettings retorna a configuração de chat do workspace
// @Summary Get chat settings
// @Tags ChatSettings
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} shared.SuccessResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/chat-settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Workspace not found")
		return
	}

	result, err := h.settingsService.GetWorkspaceSettings(r.Context(), workspaceID)
	if err != nil {
		h.HandleError(w, err, "get chat settings")
		return
	}

	h.GetWriter().WriteSuccess(w, result)
}

// UpdateSettings cria ou atualiza a configuração de chat do workspace
// @Summary Update chat settings
// @Tags ChatSettings
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param payload body dto.UpdateChatSettingsRequest true "Settings data"
// @Success 200 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/chat-settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Workspace not found")
		return
	}

	var req dto.UpdateChatSettingsRequest
	if err := h.ParseJSONBody(r, &req); err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.settingsService.UpdateWorkspaceSettings(r.Context(), workspaceID, &req)
	if err != nil {
		h.HandleError(w, err, "update chat settings")
		return
	}

	h.GetWriter().WriteSuccess(w, result, "Chat settings updated")
}
