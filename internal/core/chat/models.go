package chat

import (
	"time"

	"github.com/google/uuid"
)

// Settings representa a configuração da integração de chat de um workspace
// A linha com UserID nulo é a configuração padrão do workspace; linhas com
// UserID preenchido são overrides por usuário
type Settings struct {
	ID                 uuid.UUID  `json:"id"`
	WorkspaceID        uuid.UUID  `json:"workspace_id"`
	UserID             *uuid.UUID `json:"user_id,omitempty"`
	IsActive           bool       `json:"is_active"`
	AutoCreateContacts bool       `json:"auto_create_contacts"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// IsWorkspaceDefault verifica se esta é a configuração padrão do workspace
func (s *Settings) IsWorkspaceDefault() bool {
	return s.UserID == nil
}
