package messaging

import (
	"context"

	"github.com/google/uuid"
)

// Repository interface para persistência de mensagens
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*Message, error)
	ListByContact(ctx context.Context, workspaceID, contactID uuid.UUID, limit, offset int) ([]*Message, error)
	CountByContact(ctx context.Context, workspaceID, contactID uuid.UUID) (int64, error)
}
