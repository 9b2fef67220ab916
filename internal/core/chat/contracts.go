package chat

import (
	"context"

	"github.com/google/uuid"
)

// SettingsRepository interface para persistência das configurações de chat
type SettingsRepository interface {
	// GetWorkspaceDefault retorna a primeira linha com user_id nulo do workspace
	GetWorkspaceDefault(ctx context.Context, workspaceID uuid.UUID) (*Settings, error)
	Upsert(ctx context.Context, settings *Settings) error
}
