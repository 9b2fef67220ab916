package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flowcrm/internal/core/chat"
	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/messaging"
	"flowcrm/internal/core/workspace"
	"flowcrm/internal/services/shared/dto"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// WebhookService implementa a ingestão de mensagens de chat recebidas
// Resolve workspace, configurações e contato, e persiste exatamente uma
// mensagem por evento validado. Opera com credenciais de serviço: nenhuma
// sessão de usuário final participa deste fluxo
type WebhookService struct {
	workspaceRepo workspace.Repository
	settingsRepo  chat.SettingsRepository
	contactRepo   contact.Repository
	messageRepo   messaging.Repository

	logger *logger.Logger
}

// NewWebhookService cria nova instância do serviço de webhook
func NewWebhookService(
	workspaceRepo workspace.Repository,
	settingsRepo chat.SettingsRepository,
	contactRepo contact.Repository,
	messageRepo messaging.Repository,
	logger *logger.Logger,
) *WebhookService {
	return &WebhookService{
		workspaceRepo: workspaceRepo,
		settingsRepo:  settingsRepo,
		contactRepo:   contactRepo,
		messageRepo:   messageRepo,
		logger:        logger,
	}
}

// ProcessInbound processa um evento canônico de mensagem recebida.
//
// workspaceIDParam vem do query param e tem precedência sobre o campo
// workspace_id do payload. Erros retornados são *apperrors.AppError com o
// status HTTP correspondente. Nenhum efeito colateral ocorre antes de toda a
// validação e das verificações de política passarem
func (s *WebhookService) ProcessInbound(ctx context.Context, workspaceIDParam string, payload *dto.WebhookPayload) (*dto.WebhookResult, error) {
	workspaceIDStr := workspaceIDParam
	if workspaceIDStr == "" {
		workspaceIDStr = payload.WorkspaceID
	}
	if workspaceIDStr == "" {
		return nil, apperrors.ErrMissingWorkspaceID
	}

	if payload.Contact == nil || payload.Message == nil || payload.Message.Content == "" {
		return nil, apperrors.ErrMissingFields
	}

	// Apenas canais identificados por telefone são suportados
	if payload.Contact.Phone == "" {
		return nil, apperrors.ErrMissingPhone
	}

	workspaceID, err := uuid.Parse(workspaceIDStr)
	if err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}

	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}

	settings, err := s.settingsRepo.GetWorkspaceDefault(ctx, workspaceID)
	if err != nil || !settings.IsActive {
		return nil, apperrors.ErrIntegrationInactive
	}

	contactID, err := s.resolveContact(ctx, ws, settings, payload.Contact)
	if err != nil {
		return nil, err
	}

	msg := &messaging.Message{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		ContactID:   contactID,
		SenderType:  messaging.SenderTypeContact,
		SenderID:    contactID,
		Content:     payload.Message.Content,
		MessageType: payload.Message.MessageType,
		Status:      messaging.StatusDelivered,
		CreatedAt:   s.resolveTimestamp(payload.Timestamp),
	}
	if msg.MessageType == "" {
		msg.MessageType = messaging.MessageTypeText
	}
	if payload.Message.MediaURL != "" {
		mediaURL := payload.Message.MediaURL
		msg.MediaURL = &mediaURL
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.ErrorWithFields("Failed to store inbound message", map[string]interface{}{
			"workspace_id": workspaceID.String(),
			"contact_id":   contactID.String(),
			"error":        err.Error(),
		})
		return nil, apperrors.NewWithDetails(500, "Failed to store message", err.Error())
	}

	s.logger.InfoWithFields("Inbound message stored", map[string]interface{}{
		"workspace_id": workspaceID.String(),
		"contact_id":   contactID.String(),
		"message_id":   msg.ID.String(),
		"message_type": msg.MessageType,
	})

	return &dto.WebhookResult{
		MessageID: msg.ID.String(),
		ContactID: contactID.String(),
	}, nil
}

// resolveContact mapeia o telefone recebido para um contato existente ou cria
// um novo quando a política permite.
//
// Erro na consulta é esperado e não fatal: é tratado como "contato não
// existe". Duas requisições concorrentes para um telefone ainda não visto
// podem ambas criar um contato; a primeira escrita vence nas consultas
// seguintes e a duplicata é aceita
func (s *WebhookService) resolveContact(ctx context.Context, ws *workspace.Workspace, settings *chat.Settings, wc *dto.WebhookContact) (uuid.UUID, error) {
	existing, err := s.contactRepo.GetByPhone(ctx, ws.ID, wc.Phone)
	if err == nil {
		return existing.ID, nil
	}

	if !settings.AutoCreateContacts {
		return uuid.Nil, apperrors.ErrAutoCreateDisabled
	}

	firstName := wc.FirstName
	if firstName == "" {
		firstName = wc.Name
	}
	if firstName == "" {
		firstName = "Unknown"
	}

	now := time.Now().UTC()
	owner := ws.OwnerID
	newContact := &contact.Contact{
		ID:          uuid.New(),
		WorkspaceID: ws.ID,
		Phone:       wc.Phone,
		FirstName:   firstName,
		LastName:    "",
		Email:       wc.Email,
		Source:      contact.SourceChatWebhook,
		Status:      contact.StatusLead,
		CreatedBy:   owner,
		AssignedTo:  &owner,
		AssignedBy:  &owner,
		AssignedAt:  &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.contactRepo.Create(ctx, newContact); err != nil {
		s.logger.ErrorWithFields("Failed to auto-create contact", map[string]interface{}{
			"workspace_id": ws.ID.String(),
			"error":        err.Error(),
		})
		return uuid.Nil, apperrors.NewWithDetails(500, "Failed to create contact", err.Error())
	}

	s.logger.InfoWithFields("Contact auto-created from webhook", map[string]interface{}{
		"workspace_id": ws.ID.String(),
		"contact_id":   newContact.ID.String(),
	})

	return newContact.ID, nil
}

// resolveTimestamp usa o timestamp do payload quando presente e válido,
// permitindo que sistemas upstream retroajustem mensagens ao horário original
func (s *WebhookService) resolveTimestamp(ts string) time.Time {
	if ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}
