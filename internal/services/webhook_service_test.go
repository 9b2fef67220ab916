package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcrm/internal/core/chat"
	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/messaging"
	"flowcrm/internal/core/workspace"
	coreerrors "flowcrm/internal/core/shared/errors"
	"flowcrm/internal/services/shared/dto"
	apperrors "flowcrm/pkg/errors"
	"flowcrm/platform/logger"
)

// ===== FAKES =====

type fakeWorkspaceRepo struct {
	workspaces map[uuid.UUID]*workspace.Workspace
	getErr     error
}

func (f *fakeWorkspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if ws, ok := f.workspaces[id]; ok {
		return ws, nil
	}
	return nil, coreerrors.ErrWorkspaceNotFound
}

func (f *fakeWorkspaceRepo) Create(ctx context.Context, ws *workspace.Workspace) error {
	f.workspaces[ws.ID] = ws
	return nil
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*chat.Settings
	getErr   error
}

func (f *fakeSettingsRepo) GetWorkspaceDefault(ctx context.Context, workspaceID uuid.UUID) (*chat.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.settings[workspaceID]; ok {
		return s, nil
	}
	return nil, coreerrors.ErrSettingsNotFound
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s *chat.Settings) error {
	f.settings[s.WorkspaceID] = s
	return nil
}

type fakeContactRepo struct {
	byPhone   map[string]*contact.Contact
	created   []*contact.Contact
	phoneErr  error
	createErr error
}

func (f *fakeContactRepo) Create(ctx context.Context, c *contact.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	f.byPhone[c.Phone] = c
	return nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*contact.Contact, error) {
	for _, c := range f.byPhone {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, coreerrors.ErrContactNotFound
}

func (f *fakeContactRepo) GetByPhone(ctx context.Context, workspaceID uuid.UUID, phone string) (*contact.Contact, error) {
	if f.phoneErr != nil {
		return nil, f.phoneErr
	}
	if c, ok := f.byPhone[phone]; ok {
		return c, nil
	}
	return nil, coreerrors.ErrContactNotFound
}

func (f *fakeContactRepo) Update(ctx context.Context, c *contact.Contact) error {
	f.byPhone[c.Phone] = c
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]*contact.Contact, error) {
	out := make([]*contact.Contact, 0, len(f.byPhone))
	for _, c := range f.byPhone {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContactRepo) Count(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return int64(len(f.byPhone)), nil
}

type fakeMessageRepo struct {
	messages  []*messaging.Message
	createErr error
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *messaging.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*messaging.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, coreerrors.ErrMessageNotFound
}

func (f *fakeMessageRepo) ListByContact(ctx context.Context, workspaceID, contactID uuid.UUID, limit, offset int) ([]*messaging.Message, error) {
	out := make([]*messaging.Message, 0)
	for _, m := range f.messages {
		if m.ContactID == contactID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) CountByContact(ctx context.Context, workspaceID, contactID uuid.UUID) (int64, error) {
	msgs, _ := f.ListByContact(ctx, workspaceID, contactID, 0, 0)
	return int64(len(msgs)), nil
}

// ===== FIXTURE =====

type webhookFixture struct {
	service       *WebhookService
	workspaceID   uuid.UUID
	ownerID       uuid.UUID
	workspaceRepo *fakeWorkspaceRepo
	settingsRepo  *fakeSettingsRepo
	contactRepo   *fakeContactRepo
	messageRepo   *fakeMessageRepo
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()

	workspaceID := uuid.New()
	ownerID := uuid.New()

	workspaceRepo := &fakeWorkspaceRepo{workspaces: map[uuid.UUID]*workspace.Workspace{
		workspaceID: {ID: workspaceID, Name: "Acme", OwnerID: ownerID},
	}}
	settingsRepo := &fakeSettingsRepo{settings: map[uuid.UUID]*chat.Settings{
		workspaceID: {ID: uuid.New(), WorkspaceID: workspaceID, IsActive: true, AutoCreateContacts: true},
	}}
	contactRepo := &fakeContactRepo{byPhone: map[string]*contact.Contact{}}
	messageRepo := &fakeMessageRepo{}

	log := logger.New(logger.TestConfig())
	service := NewWebhookService(workspaceRepo, settingsRepo, contactRepo, messageRepo, log)

	return &webhookFixture{
		service:       service,
		workspaceID:   workspaceID,
		ownerID:       ownerID,
		workspaceRepo: workspaceRepo,
		settingsRepo:  settingsRepo,
		contactRepo:   contactRepo,
		messageRepo:   messageRepo,
	}
}

func validPayload() *dto.WebhookPayload {
	return &dto.WebhookPayload{
		Contact: &dto.WebhookContact{Phone: "+5511999990000", FirstName: "Maria"},
		Message: &dto.WebhookMessage{Content: "Olá"},
	}
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

// ===== TESTS =====

func TestProcessInbound_MissingWorkspaceID(t *testing.T) {
	f := newWebhookFixture(t)

	_, err := f.service.ProcessInbound(context.Background(), "", validPayload())

	assertAppError(t, err, http.StatusBadRequest, "Missing workspace_id")
	assert.Empty(t, f.messageRepo.messages)
}

func TestProcessInbound_WorkspaceFromPayloadField(t *testing.T) {
	f := newWebhookFixture(t)
	payload := validPayload()
	payload.WorkspaceID = f.workspaceID.String()

	result, err := f.service.ProcessInbound(context.Background(), "", payload)

	require.NoError(t, err)
	assert.NotEmpty(t, result.MessageID)
}

func TestProcessInbound_QueryParamTakesPrecedence(t *testing.T) {
	f := newWebhookFixture(t)
	payload := validPayload()
	payload.WorkspaceID = uuid.New().String() // workspace inexistente no payload

	result, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), payload)

	require.NoError(t, err)
	assert.NotEmpty(t, result.MessageID)
}

func TestProcessInbound_MissingFields(t *testing.T) {
	f := newWebhookFixture(t)

	cases := []struct {
		name    string
		payload *dto.WebhookPayload
	}{
		{"no contact", &dto.WebhookPayload{Message: &dto.WebhookMessage{Content: "hi"}}},
		{"no message", &dto.WebhookPayload{Contact: &dto.WebhookContact{Phone: "+1"}}},
		{"empty content", &dto.WebhookPayload{
			Contact: &dto.WebhookContact{Phone: "+1"},
			Message: &dto.WebhookMessage{Content: ""},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), tc.payload)
			assertAppError(t, err, http.StatusBadRequest, "Missing required fields: contact and message.content")
		})
	}
}

func TestProcessInbound_MissingPhone(t *testing.T) {
	f := newWebhookFixture(t)
	payload := validPayload()
	payload.Contact.Phone = ""

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), payload)

	assertAppError(t, err, http.StatusBadRequest, "Phone number is required for WhatsApp contacts")
}

func TestProcessInbound_WorkspaceNotFound(t *testing.T) {
	f := newWebhookFixture(t)

	_, err := f.service.ProcessInbound(context.Background(), uuid.New().String(), validPayload())

	assertAppError(t, err, http.StatusNotFound, "Workspace not found")
}

func TestProcessInbound_InvalidWorkspaceIDFormat(t *testing.T) {
	f := newWebhookFixture(t)

	_, err := f.service.ProcessInbound(context.Background(), "not-a-uuid", validPayload())

	assertAppError(t, err, http.StatusNotFound, "Workspace not found")
}

func TestProcessInbound_WorkspaceLookupErrorIsNotFound(t *testing.T) {
	f := newWebhookFixture(t)
	f.workspaceRepo.getErr = errors.New("connection refused")

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	assertAppError(t, err, http.StatusNotFound, "Workspace not found")
}

func TestProcessInbound_IntegrationInactive(t *testing.T) {
	f := newWebhookFixture(t)
	f.settingsRepo.settings[f.workspaceID].IsActive = false

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	assertAppError(t, err, http.StatusForbidden, "Chat integration is not active for this workspace")
}

func TestProcessInbound_MissingSettingsIsForbidden(t *testing.T) {
	f := newWebhookFixture(t)
	delete(f.settingsRepo.settings, f.workspaceID)

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	assertAppError(t, err, http.StatusForbidden, "Chat integration is not active for this workspace")
}

func TestProcessInbound_SettingsLookupErrorIsForbidden(t *testing.T) {
	f := newWebhookFixture(t)
	f.settingsRepo.getErr = errors.New("connection refused")

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	assertAppError(t, err, http.StatusForbidden, "Chat integration is not active for this workspace")
}

func TestProcessInbound_ExistingContactIsReused(t *testing.T) {
	f := newWebhookFixture(t)
	existing := &contact.Contact{
		ID:          uuid.New(),
		WorkspaceID: f.workspaceID,
		Phone:       "+5511999990000",
		FirstName:   "Maria",
	}
	f.contactRepo.byPhone[existing.Phone] = existing

	result, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), result.ContactID)
	assert.Empty(t, f.contactRepo.created, "no contact should be created")
	require.Len(t, f.messageRepo.messages, 1)
}

func TestProcessInbound_AutoCreateDisabled(t *testing.T) {
	f := newWebhookFixture(t)
	f.settingsRepo.settings[f.workspaceID].AutoCreateContacts = false

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	assertAppError(t, err, http.StatusNotFound, "Contact not found and auto-create is disabled")
	assert.Empty(t, f.messageRepo.messages)
}

func TestProcessInbound_AutoCreatesContact(t *testing.T) {
	f := newWebhookFixture(t)

	result, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.NoError(t, err)
	require.Len(t, f.contactRepo.created, 1)

	created := f.contactRepo.created[0]
	assert.Equal(t, result.ContactID, created.ID.String())
	assert.Equal(t, "+5511999990000", created.Phone)
	assert.Equal(t, "Maria", created.FirstName)
	assert.Equal(t, "", created.LastName)
	assert.Equal(t, contact.SourceChatWebhook, created.Source)
	assert.Equal(t, contact.StatusLead, created.Status)
	assert.Equal(t, f.ownerID, created.CreatedBy)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, f.ownerID, *created.AssignedTo)
	require.NotNil(t, created.AssignedBy)
	assert.Equal(t, f.ownerID, *created.AssignedBy)
	assert.NotNil(t, created.AssignedAt)
}

func TestProcessInbound_FirstNameFallbackChain(t *testing.T) {
	f := newWebhookFixture(t)

	cases := []struct {
		name     string
		contact  dto.WebhookContact
		expected string
	}{
		{"first_name wins", dto.WebhookContact{Phone: "+1000", FirstName: "Ana", Name: "Ana Souza"}, "Ana"},
		{"name fallback", dto.WebhookContact{Phone: "+1001", Name: "Bruno"}, "Bruno"},
		{"unknown fallback", dto.WebhookContact{Phone: "+1002"}, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := &dto.WebhookPayload{
				Contact: &tc.contact,
				Message: &dto.WebhookMessage{Content: "hi"},
			}
			_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), payload)
			require.NoError(t, err)

			created := f.contactRepo.created[len(f.contactRepo.created)-1]
			assert.Equal(t, tc.expected, created.FirstName)
		})
	}
}

func TestProcessInbound_ContactLookupErrorTreatedAsMiss(t *testing.T) {
	f := newWebhookFixture(t)
	f.contactRepo.phoneErr = errors.New("connection refused")

	result, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.NoError(t, err)
	require.Len(t, f.contactRepo.created, 1)
	assert.Equal(t, result.ContactID, f.contactRepo.created[0].ID.String())
}

func TestProcessInbound_MessageFields(t *testing.T) {
	f := newWebhookFixture(t)
	payload := validPayload()
	payload.Message.MessageType = "image"
	payload.Message.MediaURL = "https://cdn.example.com/a.jpg"
	payload.Timestamp = "2024-01-01T12:00:00Z"

	result, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), payload)

	require.NoError(t, err)
	require.Len(t, f.messageRepo.messages, 1)

	msg := f.messageRepo.messages[0]
	assert.Equal(t, result.MessageID, msg.ID.String())
	assert.Equal(t, messaging.SenderTypeContact, msg.SenderType)
	assert.Equal(t, msg.ContactID, msg.SenderID, "sender is the contact itself")
	assert.Equal(t, messaging.StatusDelivered, msg.Status)
	assert.Equal(t, "image", msg.MessageType)
	require.NotNil(t, msg.MediaURL)
	assert.Equal(t, "https://cdn.example.com/a.jpg", *msg.MediaURL)

	expected, _ := time.Parse(time.RFC3339, "2024-01-01T12:00:00Z")
	assert.True(t, msg.CreatedAt.Equal(expected))
}

func TestProcessInbound_MessageTypeDefaultsToText(t *testing.T) {
	f := newWebhookFixture(t)

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.NoError(t, err)
	require.Len(t, f.messageRepo.messages, 1)
	msg := f.messageRepo.messages[0]
	assert.Equal(t, messaging.MessageTypeText, msg.MessageType)
	assert.Nil(t, msg.MediaURL)
}

func TestProcessInbound_InvalidTimestampUsesNow(t *testing.T) {
	f := newWebhookFixture(t)
	payload := validPayload()
	payload.Timestamp = "yesterday at noon"

	before := time.Now().UTC()
	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), payload)
	after := time.Now().UTC()

	require.NoError(t, err)
	msg := f.messageRepo.messages[0]
	assert.False(t, msg.CreatedAt.Before(before))
	assert.False(t, msg.CreatedAt.After(after))
}

func TestProcessInbound_MessageStoreFailure(t *testing.T) {
	f := newWebhookFixture(t)
	f.messageRepo.createErr = errors.New("disk full")

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to store message", appErr.Message)
	assert.Contains(t, appErr.Details, "disk full")
}

func TestProcessInbound_ContactCreateFailure(t *testing.T) {
	f := newWebhookFixture(t)
	f.contactRepo.createErr = errors.New("constraint violation")

	_, err := f.service.ProcessInbound(context.Background(), f.workspaceID.String(), validPayload())

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to create contact", appErr.Message)
	assert.Empty(t, f.messageRepo.messages)
}
