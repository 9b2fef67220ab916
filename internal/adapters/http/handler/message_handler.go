package handler

import (
	"net/http"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/internal/services"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/platform/logger"
)

// MessageHandler implementa handlers REST para mensagens
type MessageHandler struct {
	*shared.BaseHandler
	messageService *services.MessageService
}

// NewMessageHandler cria nova instância do handler de mensagens
func NewMessageHandler(messageService *services.MessageService, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    shared.NewBaseHandler(logger),
		messageService: messageService,
	}
}

// ListMessages lista mensagens de um contato
// @Summary List contact messages
// @Tags Messages
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param contactId path string true "Contact ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} shared.SuccessResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts/{contactId}/messages [get]
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	contactID, err := h.GetContactIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Contact not found")
		return
	}

	limit, offset, err := h.GetPaginationParams(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, err.Error())
		return
	}

	result, err := h.messageService.ListMessages(r.Context(), workspaceID, contactID, limit, offset)
	if err != nil {
		h.HandleError(w, err, "list messages")
		return
	}

	h.GetWriter().WriteSuccess(w, result)
}

// SendMessage registra uma mensagem enviada a um contato
// @Summary Send message to contact
// @Tags Messages
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param contactId path string true "Contact ID"
// @Param payload body dto.SendMessageRequest true "Message data"
// @Success 201 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts/{contactId}/messages [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	contactID, err := h.GetContactIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Contact not found")
		return
	}

	var req dto.SendMessageRequest
	if err := h.ParseJSONBody(r, &req); err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.messageService.SendMessage(r.Context(), workspaceID, contactID, &req)
	if err != nil {
		h.HandleError(w, err, "send message")
		return
	}

	h.GetWriter().WriteCreated(w, result, "Message stored")
}
