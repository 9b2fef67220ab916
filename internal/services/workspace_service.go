package services

import (
	"context"

	"github.com/google/uuid"

	"flowcrm/internal/core/workspace"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// WorkspaceService implementa a camada de aplicação para workspaces
type WorkspaceService struct {
	workspaceRepo workspace.Repository

	logger *logger.Logger
}

// NewWorkspaceService cria nova instância do serviço de workspaces
func NewWorkspaceService(workspaceRepo workspace.Repository, logger *logger.Logger) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// GetWorkspace busca um workspace pelo ID
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}
	return ws, nil
}
