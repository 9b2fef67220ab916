package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository interface para persistência de contatos
type Repository interface {
	// CRUD básico
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error

	// Consultas específicas
	GetByPhone(ctx context.Context, workspaceID uuid.UUID, phone string) (*Contact, error)
	List(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]*Contact, error)
	Count(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}
