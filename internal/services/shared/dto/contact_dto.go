package dto

import (
	"time"

	"flowcrm/internal/core/contact"
)

// CreateContactRequest request para criação de contato via API
type CreateContactRequest struct {
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=lead active customer archived"`
}

// UpdateContactRequest request para atualização de contato
type UpdateContactRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=lead active customer archived"`
	AssignedTo *string `json:"assigned_to,omitempty" validate:"omitempty,uuid"`
}

// ContactResponse representação de um contato nas respostas da API
type ContactResponse struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Phone       string     `json:"phone,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListContactsResponse resposta paginada de listagem de contatos
type ListContactsResponse struct {
	Contacts []*ContactResponse `json:"contacts"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// NewContactResponse converte o modelo de domínio para resposta da API
func NewContactResponse(c *contact.Contact) *ContactResponse {
	resp := &ContactResponse{
		ID:          c.ID.String(),
		WorkspaceID: c.WorkspaceID.String(),
		Phone:       c.Phone,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Source:      c.Source,
		Status:      c.Status,
		AssignedAt:  c.AssignedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if c.AssignedTo != nil {
		assignedTo := c.AssignedTo.String()
		resp.AssignedTo = &assignedTo
	}

	return resp
}
