package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flowcrm/internal/core/chat"
	"flowcrm/internal/core/shared/errors"
)

// ChatSettingsRepository implementa a interface chat.SettingsRepository para PostgreSQL
type ChatSettingsRepository struct {
	db *sqlx.DB
}

// NewChatSettingsRepository cria uma nova instância do repositório de configurações de chat
func NewChatSettingsRepository(db *sqlx.DB) chat.SettingsRepository {
	return &ChatSettingsRepository{
		db: db,
	}
}

// chatSettingsModel representa o modelo de dados para PostgreSQL
type chatSettingsModel struct {
	ID                 string         `db:"id"`
	WorkspaceID        string         `db:"workspace_id"`
	UserID             sql.NullString `db:"user_id"`
	IsActive           bool           `db:"is_active"`
	AutoCreateContacts bool           `db:"auto_create_contacts"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// GetWorkspaceDefault busca a configuração padrão do workspace (sem usuário associado)
func (r *ChatSettingsRepository) GetWorkspaceDefault(ctx context.Context, workspaceID uuid.UUID) (*chat.Settings, error) {
	var model chatSettingsModel
	query := `
		SELECT id, workspace_id, user_id, is_active, auto_create_contacts, created_at, updated_at
		FROM chat_settings
		WHERE workspace_id = $1 AND user_id IS NULL
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &model, query, workspaceID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get chat settings: %w", err)
	}

	return r.fromModel(&model)
}

// Upsert cria ou atualiza a configuração de chat
func (r *ChatSettingsRepository) Upsert(ctx context.Context, settings *chat.Settings) error {
	model := r.toModel(settings)

	query := `
		INSERT INTO chat_settings (id, workspace_id, user_id, is_active, auto_create_contacts, created_at, updated_at)
		VALUES (:id, :workspace_id, :user_id, :is_active, :auto_create_contacts, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			is_active = EXCLUDED.is_active,
			auto_create_contacts = EXCLUDED.auto_create_contacts,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert chat settings: %w", err)
	}

	return nil
}

// toModel converte o modelo de domínio para o modelo de dados
func (r *ChatSettingsRepository) toModel(settings *chat.Settings) *chatSettingsModel {
	model := &chatSettingsModel{
		ID:                 settings.ID.String(),
		WorkspaceID:        settings.WorkspaceID.String(),
		IsActive:           settings.IsActive,
		AutoCreateContacts: settings.AutoCreateContacts,
		CreatedAt:          settings.CreatedAt,
		UpdatedAt:          settings.UpdatedAt,
	}

	if settings.UserID != nil {
		model.UserID = sql.NullString{String: settings.UserID.String(), Valid: true}
	}

	return model
}

// fromModel converte o modelo de dados para o modelo de domínio
func (r *ChatSettingsRepository) fromModel(model *chatSettingsModel) (*chat.Settings, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid chat settings ID: %w", err)
	}

	workspaceID, err := uuid.Parse(model.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid chat settings workspace ID: %w", err)
	}

	settings := &chat.Settings{
		ID:                 id,
		WorkspaceID:        workspaceID,
		IsActive:           model.IsActive,
		AutoCreateContacts: model.AutoCreateContacts,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}

	if model.UserID.Valid {
		userID, err := uuid.Parse(model.UserID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid chat settings user ID: %w", err)
		}
		settings.UserID = &userID
	}

	return settings, nil
}
