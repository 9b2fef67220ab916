package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flowcrm/internal/adapters/http/handler"
	"flowcrm/platform/config"
	"flowcrm/platform/logger"
)

// Handlers agrupa todos os handlers HTTP da aplicação
type Handlers struct {
	Health    *handler.HealthHandler
	Webhook   *handler.WebhookHandler
	Workspace *handler.WorkspaceHandler
	Contact   *handler.ContactHandler
	Message   *handler.MessageHandler
	Settings  *handler.SettingsHandler
}

// SetupRoutes configura todas as rotas da aplicação
func SetupRoutes(cfg *config.Config, logger *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	setupMiddlewares(r, cfg, logger)
	setupSwaggerRoutes(r)

	r.Get("/health", h.Health.Check)

	// Endpoint público de ingestão; parceiros de integração fazem POST direto
	// do navegador ou de bots, por isso o preflight também é atendido aqui
	r.Post("/webhook", h.Webhook.ReceiveMessage)
	r.Options("/webhook", h.Webhook.HandlePreflight)

	r.Route("/workspaces/{workspaceId}", func(r chi.Router) {
		r.Get("/", h.Workspace.GetWorkspace)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.Contact.ListContacts)
			r.Post("/", h.Contact.CreateContact)

			r.Route("/{contactId}", func(r chi.Router) {
				r.Get("/", h.Contact.GetContact)
				r.Put("/", h.Contact.UpdateContact)

				r.Get("/messages", h.Message.ListMessages)
				r.Post("/messages", h.Message.SendMessage)
			})
		})

		r.Get("/chat-settings", h.Settings.GetSettings)
		r.Put("/chat-settings", h.Settings.UpdateSettings)
	})

	return r
}
