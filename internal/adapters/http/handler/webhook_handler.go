package handler

import (
	"io"
	"net/http"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/internal/services"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/platform/logger"
)

// WebhookHandler implementa o endpoint público de ingestão de mensagens de chat
type WebhookHandler struct {
	*shared.BaseHandler
	webhookService *services.WebhookService
}

// NewWebhookHandler cria nova instância do handler de webhook
func NewWebhookHandler(webhookService *services.WebhookService, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:    shared.NewBaseHandler(logger),
		webhookService: webhookService,
	}
}

// ReceiveMessage processa um evento de mensagem recebida
// @Summary Receive inbound chat message
// @Description Accepts an inbound chat message event, resolves the contact and stores the message
// @Tags Webhook
// @Accept json
// @Produce json
// @Param workspace query string false "Workspace ID (takes precedence over the payload field)"
// @Param payload body dto.WebhookPayload true "Inbound message event"
// @Success 200 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 403 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 500 {object} shared.ErrorResponse
// @Router /webhook [post]
func (h *WebhookHandler) ReceiveMessage(w http.ResponseWriter, r *http.Request) {
	h.LogRequest(r, "receive chat webhook")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Failed to read request body")
		return
	}

	// O corpo é normalizado antes de qualquer validação; corpos de dialetos
	// desconhecidos degradam para o caminho de validação de campos
	payload := dto.NormalizeWebhookBody(body)

	workspaceParam := h.GetQueryString(r, "workspace")

	result, err := h.webhookService.ProcessInbound(r.Context(), workspaceParam, payload)
	if err != nil {
		h.HandleError(w, err, "process inbound message")
		return
	}

	h.LogSuccess("receive chat webhook", map[string]interface{}{
		"message_id": result.MessageID,
		"contact_id": result.ContactID,
	})

	h.GetWriter().WriteSuccess(w, result, "Message received and stored")
}

// HandlePreflight responde requisições OPTIONS do webhook
// @Summary Webhook CORS preflight
// @Tags Webhook
// @Success 200
// @Router /webhook [options]
func (h *WebhookHandler) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
