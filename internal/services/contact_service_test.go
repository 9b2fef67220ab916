package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcrm/internal/core/contact"
	"flowcrm/internal/services/shared/dto"
	"flowcrm/internal/services/shared/validation"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

func newContactService(f *webhookFixture) *ContactService {
	return NewContactService(f.contactRepo, f.workspaceRepo, logger.New(logger.TestConfig()), validation.New())
}

func TestSplitContactName(t *testing.T) {
	cases := []struct {
		in        string
		wantFirst string
		wantLast  string
	}{
		{"", "", ""},
		{"maria", "Maria", ""},
		{"maria silva", "Maria", "Silva"},
		{"  joão pedro  souza ", "João", "Pedro Souza"},
	}

	for _, tc := range cases {
		first, last := SplitContactName(tc.in)
		assert.Equal(t, tc.wantFirst, first, "input %q", tc.in)
		assert.Equal(t, tc.wantLast, last, "input %q", tc.in)
	}
}

func TestNormalizePagination(t *testing.T) {
	limit, offset := normalizePagination(0, -5)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, _ = normalizePagination(500, 0)
	assert.Equal(t, 100, limit)

	limit, offset = normalizePagination(30, 10)
	assert.Equal(t, 30, limit)
	assert.Equal(t, 10, offset)
}

func TestCreateContact_SplitsFreeFormName(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	resp, err := svc.CreateContact(context.Background(), f.workspaceID, &dto.CreateContactRequest{
		Phone: "+5511999990000",
		Name:  "maria silva",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.FirstName)
	assert.Equal(t, "Silva", resp.LastName)
	assert.Equal(t, contact.SourceManual, resp.Source)
	assert.Equal(t, contact.StatusLead, resp.Status)
}

func TestCreateContact_OwnerAttribution(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	_, err := svc.CreateContact(context.Background(), f.workspaceID, &dto.CreateContactRequest{
		FirstName: "Ana",
	})

	require.NoError(t, err)
	require.Len(t, f.contactRepo.created, 1)
	created := f.contactRepo.created[0]
	assert.Equal(t, f.ownerID, created.CreatedBy)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, f.ownerID, *created.AssignedTo)
}

func TestCreateContact_WorkspaceNotFound(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	_, err := svc.CreateContact(context.Background(), uuid.New(), &dto.CreateContactRequest{FirstName: "Ana"})

	assertAppError(t, err, http.StatusNotFound, "Workspace not found")
}

func TestCreateContact_InvalidPhoneFailsValidation(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	_, err := svc.CreateContact(context.Background(), f.workspaceID, &dto.CreateContactRequest{
		Phone: "not-a-phone",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestUpdateContact_NotFound(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	_, err := svc.UpdateContact(context.Background(), f.workspaceID, uuid.New(), &dto.UpdateContactRequest{})

	assertAppError(t, err, http.StatusNotFound, "Contact not found")
}

func TestUpdateContact_PartialUpdate(t *testing.T) {
	f := newWebhookFixture(t)
	svc := newContactService(f)

	resp, err := svc.CreateContact(context.Background(), f.workspaceID, &dto.CreateContactRequest{
		FirstName: "Ana",
		LastName:  "Souza",
	})
	require.NoError(t, err)

	contactID := uuid.MustParse(resp.ID)
	newStatus := contact.StatusActive
	updated, err := svc.UpdateContact(context.Background(), f.workspaceID, contactID, &dto.UpdateContactRequest{
		Status: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, contact.StatusActive, updated.Status)
	assert.Equal(t, "Ana", updated.FirstName, "untouched fields are preserved")
	assert.Equal(t, "Souza", updated.LastName)
}

func TestSettingsService_UpsertCreatesWorkspaceDefault(t *testing.T) {
	f := newWebhookFixture(t)
	svc := NewSettingsService(f.settingsRepo, f.workspaceRepo, logger.New(logger.TestConfig()))
	delete(f.settingsRepo.settings, f.workspaceID)

	resp, err := svc.UpdateWorkspaceSettings(context.Background(), f.workspaceID, &dto.UpdateChatSettingsRequest{
		IsActive:           true,
		AutoCreateContacts: false,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.AutoCreateContacts)
	assert.Nil(t, resp.UserID, "workspace default has no user")

	stored := f.settingsRepo.settings[f.workspaceID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsWorkspaceDefault())
}

func TestSettingsService_GetNotConfigured(t *testing.T) {
	f := newWebhookFixture(t)
	svc := NewSettingsService(f.settingsRepo, f.workspaceRepo, logger.New(logger.TestConfig()))
	delete(f.settingsRepo.settings, f.workspaceID)

	_, err := svc.GetWorkspaceSettings(context.Background(), f.workspaceID)

	assertAppError(t, err, http.StatusNotFound, "Chat settings not configured for this workspace")
}

func TestMessageService_ListUnknownContact(t *testing.T) {
	f := newWebhookFixture(t)
	svc := NewMessageService(f.messageRepo, f.contactRepo, logger.New(logger.TestConfig()), validation.New())

	_, err := svc.ListMessages(context.Background(), f.workspaceID, uuid.New(), 20, 0)

	assertAppError(t, err, http.StatusNotFound, "Contact not found")
}
