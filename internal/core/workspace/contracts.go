package workspace

import (
	"context"

	"github.com/google/uuid"
)

// Repository interface para persistência de workspaces
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	Create(ctx context.Context, ws *Workspace) error
}
