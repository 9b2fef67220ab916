package dto

import (
	"encoding/json"
	"strings"
)

// WebhookPayload representa o evento canônico de mensagem recebida,
// independente do dialeto do parceiro de integração
type WebhookPayload struct {
	WorkspaceID string          `json:"workspace_id,omitempty"`
	Contact     *WebhookContact `json:"contact,omitempty"`
	Message     *WebhookMessage `json:"message,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty"`
}

// WebhookContact dados do contato remetente no evento canônico
type WebhookContact struct {
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"`
}

// WebhookMessage dados da mensagem no evento canônico
type WebhookMessage struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type,omitempty"`
	MediaURL    string `json:"media_url,omitempty"`
}

// WebhookResult resposta de sucesso do webhook
type WebhookResult struct {
	MessageID string `json:"message_id"`
	ContactID string `json:"contact_id"`
}

// mindflowStdout documento embutido no campo stdout do envelope Mindflow,
// após reparo da sintaxe de literal Python
type mindflowStdout struct {
	Data struct {
		Sender  string `json:"sender"`
		Message string `json:"message"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

// NormalizeWebhookBody converte um corpo JSON arbitrário no evento canônico.
//
// O bot Mindflow envia `{response, stdout}` onde stdout embute o evento como
// string em sintaxe de literal Python. Qualquer falha no parse do dialeto
// degrada para tratar o corpo bruto como canônico, nunca para erro: a
// validação de campos seguinte produz um 400 claro em vez de um erro de parse
// opaco.
func NormalizeWebhookBody(body []byte) *WebhookPayload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return &WebhookPayload{}
	}

	_, hasResponse := fields["response"]
	stdoutRaw, hasStdout := fields["stdout"]

	if hasResponse && hasStdout {
		if payload, ok := normalizeMindflowStdout(stdoutRaw); ok {
			return payload
		}
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return &WebhookPayload{}
	}
	return &payload
}

// normalizeMindflowStdout extrai o evento canônico do campo stdout
func normalizeMindflowStdout(raw json.RawMessage) (*WebhookPayload, bool) {
	var stdout string
	if err := json.Unmarshal(raw, &stdout); err != nil {
		return nil, false
	}

	var doc mindflowStdout
	if err := json.Unmarshal([]byte(repairPythonLiteral(stdout)), &doc); err != nil {
		return nil, false
	}

	return &WebhookPayload{
		Contact: &WebhookContact{
			// O telefone é repassado sem normalização; formatação de
			// discagem internacional é responsabilidade do caminho de envio
			Phone:     doc.Data.Sender,
			FirstName: "WhatsApp User",
		},
		Message: &WebhookMessage{
			Content:     doc.Data.Message,
			MessageType: "text",
		},
		Timestamp: doc.Timestamp,
	}, true
}

// repairPythonLiteral converte um documento em sintaxe de literal Python
// (aspas simples, True/False) para JSON válido
func repairPythonLiteral(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "'", `"`)
	s = strings.ReplaceAll(s, "True", "true")
	s = strings.ReplaceAll(s, "False", "false")
	return s
}
