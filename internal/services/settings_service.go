package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flowcrm/internal/core/chat"
	"flowcrm/internal/core/workspace"
	"flowcrm/internal/services/shared/dto"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// SettingsService implementa a camada de aplicação para configurações de chat
type SettingsService struct {
	settingsRepo  chat.SettingsRepository
	workspaceRepo workspace.Repository

	logger *logger.Logger
}

// NewSettingsService cria nova instância do serviço de configurações
func NewSettingsService(
	settingsRepo chat.SettingsRepository,
	workspaceRepo workspace.Repository,
	logger *logger.Logger,
) *SettingsService {
	return &SettingsService{
		settingsRepo:  settingsRepo,
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// GetWorkspaceSettings retorna a configuração padrão de chat do workspace
func (s *SettingsService) GetWorkspaceSettings(ctx context.Context, workspaceID uuid.UUID) (*dto.ChatSettingsResponse, error) {
	if _, err := s.workspaceRepo.GetByID(ctx, workspaceID); err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}

	settings, err := s.settingsRepo.GetWorkspaceDefault(ctx, workspaceID)
	if err != nil {
		return nil, apperrors.New(404, "Chat settings not configured for this workspace")
	}

	return dto.NewChatSettingsResponse(settings), nil
}

// UpdateWorkspaceSettings cria ou atualiza a configuração padrão do workspace
func (s *SettingsService) UpdateWorkspaceSettings(ctx context.Context, workspaceID uuid.UUID, req *dto.UpdateChatSettingsRequest) (*dto.ChatSettingsResponse, error) {
	if _, err := s.workspaceRepo.GetByID(ctx, workspaceID); err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}

	now := time.Now().UTC()
	settings, err := s.settingsRepo.GetWorkspaceDefault(ctx, workspaceID)
	if err != nil {
		settings = &chat.Settings{
			ID:          uuid.New(),
			WorkspaceID: workspaceID,
			CreatedAt:   now,
		}
	}

	settings.IsActive = req.IsActive
	settings.AutoCreateContacts = req.AutoCreateContacts
	settings.UpdatedAt = now

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to save chat settings", err.Error())
	}

	s.logger.InfoWithFields("Chat settings updated", map[string]interface{}{
		"workspace_id":         workspaceID.String(),
		"is_active":            settings.IsActive,
		"auto_create_contacts": settings.AutoCreateContacts,
	})

	return dto.NewChatSettingsResponse(settings), nil
}
