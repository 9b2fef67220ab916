package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/messaging"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/internal/services/shared/validation"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// MessageService implementa a camada de aplicação para mensagens
type MessageService struct {
	messageRepo messaging.Repository
	contactRepo contact.Repository

	logger    *logger.Logger
	validator *validation.Validator
}

// NewMessageService cria nova instância do serviço de mensagens
func NewMessageService(
	messageRepo messaging.Repository,
	contactRepo contact.Repository,
	logger *logger.Logger,
	validator *validation.Validator,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		contactRepo: contactRepo,
		logger:      logger,
		validator:   validator,
	}
}

// ListMessages lista mensagens de um contato com paginação
func (s *MessageService) ListMessages(ctx context.Context, workspaceID, contactID uuid.UUID, limit, offset int) (*dto.ListMessagesResponse, error) {
	limit, offset = normalizePagination(limit, offset)

	if _, err := s.contactRepo.GetByID(ctx, workspaceID, contactID); err != nil {
		return nil, apperrors.ErrContactNotFound
	}

	messages, err := s.messageRepo.ListByContact(ctx, workspaceID, contactID, limit, offset)
	if err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to list messages", err.Error())
	}

	total, err := s.messageRepo.CountByContact(ctx, workspaceID, contactID)
	if err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to count messages", err.Error())
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.NewMessageResponse(m))
	}

	return &dto.ListMessagesResponse{
		Messages: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// SendMessage registra uma mensagem enviada por um usuário a um contato
func (s *MessageService) SendMessage(ctx context.Context, workspaceID, contactID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.NewWithDetails(400, "Validation failed", err.Error())
	}

	if _, err := s.contactRepo.GetByID(ctx, workspaceID, contactID); err != nil {
		return nil, apperrors.ErrContactNotFound
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		return nil, apperrors.NewWithDetails(400, "Validation failed", "sender_id must be a valid UUID")
	}

	msg := &messaging.Message{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		ContactID:   contactID,
		SenderType:  messaging.SenderTypeUser,
		SenderID:    senderID,
		Content:     req.Content,
		MessageType: req.MessageType,
		Status:      messaging.StatusSent,
		CreatedAt:   time.Now().UTC(),
	}
	if msg.MessageType == "" {
		msg.MessageType = messaging.MessageTypeText
	}
	if req.MediaURL != "" {
		mediaURL := req.MediaURL
		msg.MediaURL = &mediaURL
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to store message", err.Error())
	}

	s.logger.InfoWithFields("Outbound message stored", map[string]interface{}{
		"workspace_id": workspaceID.String(),
		"contact_id":   contactID.String(),
		"message_id":   msg.ID.String(),
	})

	return dto.NewMessageResponse(msg), nil
}
