package dto

import (
	"time"

	"flowcrm/internal/core/chat"
)

// UpdateChatSettingsRequest request para configurar a integração de chat
type UpdateChatSettingsRequest struct {
	IsActive           bool `json:"is_active"`
	AutoCreateContacts bool `json:"auto_create_contacts"`
}

// ChatSettingsResponse representação das configurações de chat na API
type ChatSettingsResponse struct {
	ID                 string    `json:"id"`
	WorkspaceID        string    `json:"workspace_id"`
	UserID             *string   `json:"user_id,omitempty"`
	IsActive           bool      `json:"is_active"`
	AutoCreateContacts bool      `json:"auto_create_contacts"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewChatSettingsResponse converte o modelo de domínio para resposta da API
func NewChatSettingsResponse(s *chat.Settings) *ChatSettingsResponse {
	resp := &ChatSettingsResponse{
		ID:                 s.ID.String(),
		WorkspaceID:        s.WorkspaceID.String(),
		IsActive:           s.IsActive,
		AutoCreateContacts: s.AutoCreateContacts,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if s.UserID != nil {
		userID := s.UserID.String()
		resp.UserID = &userID
	}

	return resp
}
