package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact representa um contato dentro de um workspace
// Contatos de chat são identificados pelo par (workspace_id, phone)
type Contact struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	Phone       string     `json:"phone,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedBy  *uuid.UUID `json:"assigned_by,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Source constantes para origem do contato
const (
	SourceChatWebhook = "chat_webhook"
	SourceManual      = "manual"
	SourceImport      = "import"
)

// Status constantes para o ciclo de vida do contato
const (
	StatusLead     = "lead"
	StatusActive   = "active"
	StatusCustomer = "customer"
	StatusArchived = "archived"
)

// IsValidStatus verifica se o status do contato é válido
func IsValidStatus(status string) bool {
	switch status {
	case StatusLead, StatusActive, StatusCustomer, StatusArchived:
		return true
	default:
		return false
	}
}

// FullName retorna o nome completo do contato
func (c *Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
