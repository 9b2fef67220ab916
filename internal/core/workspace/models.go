package workspace

import (
	"time"

	"github.com/google/uuid"
)

// Workspace representa o limite de tenant do CRM
// Todo contato, mensagem e configuração pertence a exatamente um workspace
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
