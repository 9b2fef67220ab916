package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWebhookBody_CanonicalPayload(t *testing.T) {
	body := []byte(`{
		"workspace_id": "b7a9c6c2-6a5f-4c4f-9a3e-2f8d1f0f1234",
		"contact": {"phone": "+5511999990000", "first_name": "Maria"},
		"message": {"content": "Olá", "message_type": "text"},
		"timestamp": "2024-01-01T12:00:00Z"
	}`)

	payload := NormalizeWebhookBody(body)

	require.NotNil(t, payload.Contact)
	require.NotNil(t, payload.Message)
	assert.Equal(t, "b7a9c6c2-6a5f-4c4f-9a3e-2f8d1f0f1234", payload.WorkspaceID)
	assert.Equal(t, "+5511999990000", payload.Contact.Phone)
	assert.Equal(t, "Maria", payload.Contact.FirstName)
	assert.Equal(t, "Olá", payload.Message.Content)
	assert.Equal(t, "2024-01-01T12:00:00Z", payload.Timestamp)
}

func TestNormalizeWebhookBody_MindflowEnvelope(t *testing.T) {
	body := []byte(`{
		"response": "ok",
		"stdout": "{'data': {'sender': '+15550001111', 'message': 'Hi'}, 'timestamp': '2024-01-01T00:00:00Z'}"
	}`)

	payload := NormalizeWebhookBody(body)

	require.NotNil(t, payload.Contact)
	require.NotNil(t, payload.Message)
	assert.Equal(t, "+15550001111", payload.Contact.Phone)
	assert.Equal(t, "WhatsApp User", payload.Contact.FirstName)
	assert.Equal(t, "Hi", payload.Message.Content)
	assert.Equal(t, "text", payload.Message.MessageType)
	assert.Equal(t, "2024-01-01T00:00:00Z", payload.Timestamp)
}

func TestNormalizeWebhookBody_MindflowPythonBooleans(t *testing.T) {
	body := []byte(`{
		"response": "ok",
		"stdout": "{'data': {'sender': '+15550001111', 'message': 'ping', 'delivered': True, 'read': False}, 'timestamp': '2024-02-02T08:30:00Z'}"
	}`)

	payload := NormalizeWebhookBody(body)

	require.NotNil(t, payload.Message)
	assert.Equal(t, "ping", payload.Message.Content)
}

func TestNormalizeWebhookBody_MindflowMalformedStdoutFallsBack(t *testing.T) {
	// stdout irrecuperável: o corpo bruto vira o payload canônico e a
	// validação de campos decide o destino da requisição
	body := []byte(`{"response": "ok", "stdout": "not an event at all"}`)

	payload := NormalizeWebhookBody(body)

	require.NotNil(t, payload)
	assert.Nil(t, payload.Contact)
	assert.Nil(t, payload.Message)
}

func TestNormalizeWebhookBody_BothKeysRequiredForEnvelope(t *testing.T) {
	// Sem o campo response, o corpo é tratado como canônico mesmo com stdout
	body := []byte(`{"stdout": "{'data': {'sender': '+1', 'message': 'x'}}", "contact": {"phone": "+5511988887777"}, "message": {"content": "direct"}}`)

	payload := NormalizeWebhookBody(body)

	require.NotNil(t, payload.Contact)
	assert.Equal(t, "+5511988887777", payload.Contact.Phone)
	assert.Equal(t, "direct", payload.Message.Content)
}

func TestNormalizeWebhookBody_InvalidJSON(t *testing.T) {
	payload := NormalizeWebhookBody([]byte(`{{{not json`))

	require.NotNil(t, payload)
	assert.Empty(t, payload.WorkspaceID)
	assert.Nil(t, payload.Contact)
	assert.Nil(t, payload.Message)
}

func TestRepairPythonLiteral(t *testing.T) {
	got := repairPythonLiteral("  {'ok': True, 'fail': False}  ")
	assert.Equal(t, `{"ok": true, "fail": false}`, got)
}
