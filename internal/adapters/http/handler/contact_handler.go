package handler

import (
	"net/http"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/internal/services"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/platform/logger"
)

// ContactHandler implementa handlers REST para contatos
type ContactHandler struct {
	*shared.BaseHandler
	contactService *services.ContactService
}

// NewContactHandler cria nova instância do handler de contatos
func NewContactHandler(contactService *services.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    shared.NewBaseHandler(logger),
		contactService: contactService,
	}
}

// ListContacts lista contatos de um workspace
// @Summary List contacts
// @Tags Contacts
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	limit, offset, err := h.GetPaginationParams(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, err.Error())
		return
	}

	result, err := h.contactService.ListContacts(r.Context(), workspaceID, limit, offset)
	if err != nil {
		h.HandleError(w, err, "list contacts")
		return
	}

	h.GetWriter().WriteSuccess(w, result)
}

// CreateContact cria um contato
// @Summary Create contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param payload body dto.CreateContactRequest true "Contact data"
// @Success 201 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	var req dto.CreateContactRequest
	if err := h.ParseJSONBody(r, &req); err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.contactService.CreateContact(r.Context(), workspaceID, &req)
	if err != nil {
		h.HandleError(w, err, "create contact")
		return
	}

	h.GetWriter().WriteCreated(w, result, "Contact created")
}

// GetContact busca um contato pelo ID
// @Summary Get contact
// @Tags Contacts
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param contactId path string true "Contact ID"
// @Success 200 {object} shared.SuccessResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts/{contactId} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	contactID, err := h.GetContactIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Contact not found")
		return
	}

	result, err := h.contactService.GetContact(r.Context(), workspaceID, contactID)
	if err != nil {
		h.HandleError(w, err, "get contact")
		return
	}

	h.GetWriter().WriteSuccess(w, result)
}

// UpdateContact atualiza um contato
// @Summary Update contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param contactId path string true "Contact ID"
// @Param payload body dto.UpdateContactRequest true "Fields to update"
// @Success 200 {object} shared.SuccessResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /workspaces/{workspaceId}/contacts/{contactId} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := h.GetWorkspaceIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid workspace ID")
		return
	}

	contactID, err := h.GetContactIDFromURL(r)
	if err != nil {
		h.GetWriter().WriteNotFound(w, "Contact not found")
		return
	}

	var req dto.UpdateContactRequest
	if err := h.ParseJSONBody(r, &req); err != nil {
		h.GetWriter().WriteBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.contactService.UpdateContact(r.Context(), workspaceID, contactID, &req)
	if err != nil {
		h.HandleError(w, err, "update contact")
		return
	}

	h.GetWriter().WriteSuccess(w, result, "Contact updated")
}
