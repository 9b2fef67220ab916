package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flowcrm/internal/core/shared/errors"
	"flowcrm/internal/core/workspace"
)

// WorkspaceRepository implementa a interface workspace.Repository para PostgreSQL
type WorkspaceRepository struct {
	db *sqlx.DB
}

// NewWorkspaceRepository cria uma nova instância do repositório de workspaces
func NewWorkspaceRepository(db *sqlx.DB) workspace.Repository {
	return &WorkspaceRepository{
		db: db,
	}
}

// workspaceModel representa o modelo de dados para PostgreSQL
type workspaceModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetByID busca um workspace pelo ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	var model workspaceModel
	query := `SELECT id, name, owner_id, created_at, updated_at FROM workspaces WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace by ID: %w", err)
	}

	return r.fromModel(&model)
}

// Create cria um novo workspace
func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	model := &workspaceModel{
		ID:        ws.ID.String(),
		Name:      ws.Name,
		OwnerID:   ws.OwnerID.String(),
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}

	query := `
		INSERT INTO workspaces (id, name, owner_id, created_at, updated_at)
		VALUES (:id, :name, :owner_id, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return nil
}

// fromModel converte o modelo de dados para o modelo de domínio
func (r *WorkspaceRepository) fromModel(model *workspaceModel) (*workspace.Workspace, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace ID: %w", err)
	}

	ownerID, err := uuid.Parse(model.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace owner ID: %w", err)
	}

	return &workspace.Workspace{
		ID:        id,
		Name:      model.Name,
		OwnerID:   ownerID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
