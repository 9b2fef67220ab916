package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/workspace"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/internal/services/shared/validation"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// ContactService implementa a camada de aplicação para contatos
type ContactService struct {
	contactRepo   contact.Repository
	workspaceRepo workspace.Repository

	logger    *logger.Logger
	validator *validation.Validator
}

// NewContactService cria nova instância do serviço de contatos
func NewContactService(
	contactRepo contact.Repository,
	workspaceRepo workspace.Repository,
	logger *logger.Logger,
	validator *validation.Validator,
) *ContactService {
	return &ContactService{
		contactRepo:   contactRepo,
		workspaceRepo: workspaceRepo,
		logger:        logger,
		validator:     validator,
	}
}

// ListContacts lista contatos de um workspace com paginação
func (s *ContactService) ListContacts(ctx context.Context, workspaceID uuid.UUID, limit, offset int) (*dto.ListContactsResponse, error) {
	limit, offset = normalizePagination(limit, offset)

	contacts, err := s.contactRepo.List(ctx, workspaceID, limit, offset)
	if err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to list contacts", err.Error())
	}

	total, err := s.contactRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to count contacts", err.Error())
	}

	responses := make([]*dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, dto.NewContactResponse(c))
	}

	return &dto.ListContactsResponse{
		Contacts: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// GetContact busca um contato pelo ID
func (s *ContactService) GetContact(ctx context.Context, workspaceID, contactID uuid.UUID) (*dto.ContactResponse, error) {
	c, err := s.contactRepo.GetByID(ctx, workspaceID, contactID)
	if err != nil {
		return nil, apperrors.ErrContactNotFound
	}
	return dto.NewContactResponse(c), nil
}

// CreateContact cria um contato manualmente via API
func (s *ContactService) CreateContact(ctx context.Context, workspaceID uuid.UUID, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.NewWithDetails(400, "Validation failed", err.Error())
	}

	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, apperrors.ErrWorkspaceNotFound
	}

	firstName, lastName := req.FirstName, req.LastName
	if firstName == "" && req.Name != "" {
		firstName, lastName = SplitContactName(req.Name)
	}

	status := req.Status
	if status == "" {
		status = contact.StatusLead
	}

	now := time.Now().UTC()
	owner := ws.OwnerID
	c := &contact.Contact{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Phone:       req.Phone,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       req.Email,
		Source:      contact.SourceManual,
		Status:      status,
		CreatedBy:   owner,
		AssignedTo:  &owner,
		AssignedBy:  &owner,
		AssignedAt:  &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.contactRepo.Create(ctx, c); err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to create contact", err.Error())
	}

	s.logger.InfoWithFields("Contact created", map[string]interface{}{
		"workspace_id": workspaceID.String(),
		"contact_id":   c.ID.String(),
		"source":       c.Source,
	})

	return dto.NewContactResponse(c), nil
}

// UpdateContact atualiza campos de um contato existente
func (s *ContactService) UpdateContact(ctx context.Context, workspaceID, contactID uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.NewWithDetails(400, "Validation failed", err.Error())
	}

	c, err := s.contactRepo.GetByID(ctx, workspaceID, contactID)
	if err != nil {
		return nil, apperrors.ErrContactNotFound
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			return nil, apperrors.ErrInvalidContactData
		}
		now := time.Now().UTC()
		c.AssignedTo = &assignee
		c.AssignedAt = &now
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.contactRepo.Update(ctx, c); err != nil {
		return nil, apperrors.NewWithDetails(500, "Failed to update contact", err.Error())
	}

	return dto.NewContactResponse(c), nil
}

// SplitContactName divide um nome livre em primeiro e último nome,
// aplicando title case em cada parte
func SplitContactName(name string) (string, string) {
	caser := cases.Title(language.Und)

	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return caser.String(parts[0]), ""
	default:
		return caser.String(parts[0]), caser.String(strings.Join(parts[1:], " "))
	}
}

// normalizePagination aplica limites padrão de paginação
func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
