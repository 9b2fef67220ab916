package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Message representa uma mensagem de chat trocada com um contato
type Message struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	ContactID   uuid.UUID `json:"contact_id"`
	SenderType  string    `json:"sender_type"` // contact, user
	SenderID    uuid.UUID `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"` // text, image, file, audio
	MediaURL    *string   `json:"media_url,omitempty"`
	Status      string    `json:"status"` // delivered, sent, read, failed
	CreatedAt   time.Time `json:"created_at"`
}

// SenderType constantes para o remetente da mensagem
const (
	SenderTypeContact = "contact"
	SenderTypeUser    = "user"
)

// MessageType constantes para tipos de mensagem
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
	MessageTypeAudio = "audio"
)

// Status constantes para o status de entrega
const (
	StatusDelivered = "delivered"
	StatusSent      = "sent"
	StatusRead      = "read"
	StatusFailed    = "failed"
)

// IsValidMessageType verifica se o tipo de mensagem é válido
func IsValidMessageType(msgType string) bool {
	switch msgType {
	case MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeAudio:
		return true
	default:
		return false
	}
}

// IsInbound verifica se a mensagem foi enviada pelo contato
func (m *Message) IsInbound() bool {
	return m.SenderType == SenderTypeContact
}
