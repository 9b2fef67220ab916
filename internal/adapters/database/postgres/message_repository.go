package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flowcrm/internal/core/messaging"
	"flowcrm/internal/core/shared/errors"
)

// MessageRepository implementa a interface messaging.Repository para PostgreSQL
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository cria uma nova instância do repositório de mensagens
func NewMessageRepository(db *sqlx.DB) messaging.Repository {
	return &MessageRepository{
		db: db,
	}
}

// messageModel representa o modelo de dados para PostgreSQL
type messageModel struct {
	ID          string         `db:"id"`
	WorkspaceID string         `db:"workspace_id"`
	ContactID   string         `db:"contact_id"`
	SenderType  string         `db:"sender_type"`
	SenderID    string         `db:"sender_id"`
	Content     string         `db:"content"`
	MessageType string         `db:"message_type"`
	MediaURL    sql.NullString `db:"media_url"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

const messageColumns = `
	id, workspace_id, contact_id, sender_type, sender_id, content, message_type, media_url, status, created_at
`

// Create cria uma nova mensagem no banco de dados
func (r *MessageRepository) Create(ctx context.Context, msg *messaging.Message) error {
	model := r.toModel(msg)

	query := `
		INSERT INTO messages (
			id, workspace_id, contact_id, sender_type, sender_id, content, message_type, media_url, status, created_at
		) VALUES (
			:id, :workspace_id, :contact_id, :sender_type, :sender_id, :content, :message_type, :media_url, :status, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// GetByID busca uma mensagem pelo ID dentro de um workspace
func (r *MessageRepository) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*messaging.Message, error) {
	var model messageModel
	query := `SELECT ` + messageColumns + ` FROM messages WHERE workspace_id = $1 AND id = $2`

	err := r.db.GetContext(ctx, &model, query, workspaceID.String(), id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message by ID: %w", err)
	}

	return r.fromModel(&model)
}

// ListByContact retorna mensagens de um contato com paginação
func (r *MessageRepository) ListByContact(ctx context.Context, workspaceID, contactID uuid.UUID, limit, offset int) ([]*messaging.Message, error) {
	var models []messageModel
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE workspace_id = $1 AND contact_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	err := r.db.SelectContext(ctx, &models, query, workspaceID.String(), contactID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*messaging.Message, 0, len(models))
	for i := range models {
		msg, err := r.fromModel(&models[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// CountByContact retorna o número total de mensagens de um contato
func (r *MessageRepository) CountByContact(ctx context.Context, workspaceID, contactID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM messages WHERE workspace_id = $1 AND contact_id = $2`

	if err := r.db.GetContext(ctx, &count, query, workspaceID.String(), contactID.String()); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

// toModel converte o modelo de domínio para o modelo de dados
func (r *MessageRepository) toModel(msg *messaging.Message) *messageModel {
	model := &messageModel{
		ID:          msg.ID.String(),
		WorkspaceID: msg.WorkspaceID.String(),
		ContactID:   msg.ContactID.String(),
		SenderType:  msg.SenderType,
		SenderID:    msg.SenderID.String(),
		Content:     msg.Content,
		MessageType: msg.MessageType,
		Status:      msg.Status,
		CreatedAt:   msg.CreatedAt,
	}

	if msg.MediaURL != nil {
		model.MediaURL = sql.NullString{String: *msg.MediaURL, Valid: true}
	}

	return model
}

// fromModel converte o modelo de dados para o modelo de domínio
func (r *MessageRepository) fromModel(model *messageModel) (*messaging.Message, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid message ID: %w", err)
	}

	workspaceID, err := uuid.Parse(model.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid message workspace ID: %w", err)
	}

	contactID, err := uuid.Parse(model.ContactID)
	if err != nil {
		return nil, fmt.Errorf("invalid message contact ID: %w", err)
	}

	senderID, err := uuid.Parse(model.SenderID)
	if err != nil {
		return nil, fmt.Errorf("invalid message sender ID: %w", err)
	}

	msg := &messaging.Message{
		ID:          id,
		WorkspaceID: workspaceID,
		ContactID:   contactID,
		SenderType:  model.SenderType,
		SenderID:    senderID,
		Content:     model.Content,
		MessageType: model.MessageType,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
	}

	if model.MediaURL.Valid {
		mediaURL := model.MediaURL.String
		msg.MediaURL = &mediaURL
	}

	return msg, nil
}
