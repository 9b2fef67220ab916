package dto

import (
	"time"

	"flowcrm/internal/core/messaging"
)

// SendMessageRequest request para envio de mensagem a um contato
type SendMessageRequest struct {
	Content     string `json:"content" validate:"required"`
	MessageType string `json:"message_type,omitempty" validate:"omitempty,oneof=text image file audio"`
	MediaURL    string `json:"media_url,omitempty" validate:"omitempty,url"`
	SenderID    string `json:"sender_id" validate:"required,uuid"`
}

// MessageResponse representação de uma mensagem nas respostas da API
type MessageResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	ContactID   string    `json:"contact_id"`
	SenderType  string    `json:"sender_type"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	MediaURL    *string   `json:"media_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMessagesResponse resposta paginada de listagem de mensagens
type ListMessagesResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// NewMessageResponse converte o modelo de domínio para resposta da API
func NewMessageResponse(m *messaging.Message) *MessageResponse {
	return &MessageResponse{
		ID:          m.ID.String(),
		WorkspaceID: m.WorkspaceID.String(),
		ContactID:   m.ContactID.String(),
		SenderType:  m.SenderType,
		SenderID:    m.SenderID.String(),
		Content:     m.Content,
		MessageType: m.MessageType,
		MediaURL:    m.MediaURL,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}
