package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/shared/errors"
)

// ContactRepository implementa a interface contact.Repository para PostgreSQL
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository cria uma nova instância do repositório de contatos
func NewContactRepository(db *sqlx.DB) contact.Repository {
	return &ContactRepository{
		db: db,
	}
}

// contactModel representa o modelo de dados para PostgreSQL
type contactModel struct {
	ID          string         `db:"id"`
	WorkspaceID string         `db:"workspace_id"`
	Phone       sql.NullString `db:"phone"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Email       sql.NullString `db:"email"`
	Source      string         `db:"source"`
	Status      string         `db:"status"`
	CreatedBy   string         `db:"created_by"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	AssignedBy  sql.NullString `db:"assigned_by"`
	AssignedAt  sql.NullTime   `db:"assigned_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const contactColumns = `
	id, workspace_id, phone, first_name, last_name, email, source, status,
	created_by, assigned_to, assigned_by, assigned_at, created_at, updated_at
`

// Create cria um novo contato no banco de dados
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	model := r.toModel(c)

	query := `
		INSERT INTO contacts (
			id, workspace_id, phone, first_name, last_name, email, source, status,
			created_by, assigned_to, assigned_by, assigned_at, created_at, updated_at
		) VALUES (
			:id, :workspace_id, :phone, :first_name, :last_name, :email, :source, :status,
			:created_by, :assigned_to, :assigned_by, :assigned_at, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// GetByID busca um contato pelo ID dentro de um workspace
func (r *ContactRepository) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*contact.Contact, error) {
	var model contactModel
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE workspace_id = $1 AND id = $2`

	err := r.db.GetContext(ctx, &model, query, workspaceID.String(), id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact by ID: %w", err)
	}

	return r.fromModel(&model)
}

// GetByPhone busca um contato pelo telefone dentro de um workspace
// Retorna a primeira correspondência; o telefone não é único no banco
func (r *ContactRepository) GetByPhone(ctx context.Context, workspaceID uuid.UUID, phone string) (*contact.Contact, error) {
	var model contactModel
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE workspace_id = $1 AND phone = $2
		ORDER BY created_at ASC
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &model, query, workspaceID.String(), phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact by phone: %w", err)
	}

	return r.fromModel(&model)
}

// Update atualiza um contato existente
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	model := r.toModel(c)

	query := `
		UPDATE contacts SET
			phone = :phone,
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			source = :source,
			status = :status,
			assigned_to = :assigned_to,
			assigned_by = :assigned_by,
			assigned_at = :assigned_at,
			updated_at = :updated_at
		WHERE workspace_id = :workspace_id AND id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.ErrContactNotFound
	}

	return nil
}

// List retorna contatos de um workspace com paginação
func (r *ContactRepository) List(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]*contact.Contact, error) {
	var models []contactModel
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	err := r.db.SelectContext(ctx, &models, query, workspaceID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*contact.Contact, 0, len(models))
	for i := range models {
		c, err := r.fromModel(&models[i])
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}

// Count retorna o número total de contatos de um workspace
func (r *ContactRepository) Count(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM contacts WHERE workspace_id = $1`

	if err := r.db.GetContext(ctx, &count, query, workspaceID.String()); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	return count, nil
}

// toModel converte o modelo de domínio para o modelo de dados
func (r *ContactRepository) toModel(c *contact.Contact) *contactModel {
	model := &contactModel{
		ID:          c.ID.String(),
		WorkspaceID: c.WorkspaceID.String(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Source:      c.Source,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if c.Phone != "" {
		model.Phone = sql.NullString{String: c.Phone, Valid: true}
	}
	if c.Email != "" {
		model.Email = sql.NullString{String: c.Email, Valid: true}
	}
	if c.AssignedTo != nil {
		model.AssignedTo = sql.NullString{String: c.AssignedTo.String(), Valid: true}
	}
	if c.AssignedBy != nil {
		model.AssignedBy = sql.NullString{String: c.AssignedBy.String(), Valid: true}
	}
	if c.AssignedAt != nil {
		model.AssignedAt = sql.NullTime{Time: *c.AssignedAt, Valid: true}
	}

	return model
}

// fromModel converte o modelo de dados para o modelo de domínio
func (r *ContactRepository) fromModel(model *contactModel) (*contact.Contact, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid contact ID: %w", err)
	}

	workspaceID, err := uuid.Parse(model.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid contact workspace ID: %w", err)
	}

	createdBy, err := uuid.Parse(model.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid contact creator ID: %w", err)
	}

	c := &contact.Contact{
		ID:          id,
		WorkspaceID: workspaceID,
		Phone:       model.Phone.String,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Email:       model.Email.String,
		Source:      model.Source,
		Status:      model.Status,
		CreatedBy:   createdBy,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if model.AssignedTo.Valid {
		assignedTo, err := uuid.Parse(model.AssignedTo.String)
		if err != nil {
			return nil, fmt.Errorf("invalid contact assignee ID: %w", err)
		}
		c.AssignedTo = &assignedTo
	}
	if model.AssignedBy.Valid {
		assignedBy, err := uuid.Parse(model.AssignedBy.String)
		if err != nil {
			return nil, fmt.Errorf("invalid contact assigner ID: %w", err)
		}
		c.AssignedBy = &assignedBy
	}
	if model.AssignedAt.Valid {
		assignedAt := model.AssignedAt.Time
		c.AssignedAt = &assignedAt
	}

	return c, nil
}
