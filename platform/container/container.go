package container

import (
	"context"
	"fmt"
	"net/http"

	"flowcrm/internal/adapters/database/postgres"
	"flowcrm/internal/adapters/http/handler"
	"flowcrm/internal/adapters/http/router"
	"flowcrm/internal/core/chat"
	"flowcrm/internal/core/contact"
	"flowcrm/internal/core/messaging"
	"flowcrm/internal/core/workspace"
	"flowcrm/internal/services"
	"flowcrm/internal/services/shared/validation"
	"flowcrm/platform/config"
	"flowcrm/platform/database"
	"flowcrm/platform/logger"
)

// Container é o container principal de Dependency Injection
type Container struct {
	// Platform dependencies
	config   *config.Config
	logger   *logger.Logger
	database *database.Database
	version  string

	// Repositories
	workspaceRepo workspace.Repository
	settingsRepo  chat.SettingsRepository
	contactRepo   contact.Repository
	messageRepo   messaging.Repository

	// Application services
	webhookService   *services.WebhookService
	workspaceService *services.WorkspaceService
	contactService   *services.ContactService
	messageService   *services.MessageService
	settingsService  *services.SettingsService

	handlers *router.Handlers
}

// Config estrutura de configuração para o container
type Config struct {
	AppConfig *config.Config
	Logger    *logger.Logger
	Database  *database.Database
	Version   string
}

// New cria uma nova instância do container
func New(cfg *Config) (*Container, error) {
	container := &Container{
		config:   cfg.AppConfig,
		logger:   cfg.Logger,
		database: cfg.Database,
		version:  cfg.Version,
	}

	if err := container.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	cfg.Logger.Info("Dependency injection container initialized successfully")
	return container, nil
}

// initialize inicializa todos os componentes
func (c *Container) initialize() error {
	c.logger.Debug("Initializing container...")

	// 1. Database repositories
	c.workspaceRepo = postgres.NewWorkspaceRepository(c.database.DB)
	c.settingsRepo = postgres.NewChatSettingsRepository(c.database.DB)
	c.contactRepo = postgres.NewContactRepository(c.database.DB)
	c.messageRepo = postgres.NewMessageRepository(c.database.DB)

	// 2. Validator
	validator := validation.New()

	// 3. Application services
	c.webhookService = services.NewWebhookService(
		c.workspaceRepo,
		c.settingsRepo,
		c.contactRepo,
		c.messageRepo,
		c.logger,
	)

	c.workspaceService = services.NewWorkspaceService(c.workspaceRepo, c.logger)

	c.contactService = services.NewContactService(
		c.contactRepo,
		c.workspaceRepo,
		c.logger,
		validator,
	)

	c.messageService = services.NewMessageService(
		c.messageRepo,
		c.contactRepo,
		c.logger,
		validator,
	)

	c.settingsService = services.NewSettingsService(
		c.settingsRepo,
		c.workspaceRepo,
		c.logger,
	)

	// 4. HTTP handlers
	c.handlers = &router.Handlers{
		Health:    handler.NewHealthHandler(c.database, c.version, c.logger),
		Webhook:   handler.NewWebhookHandler(c.webhookService, c.logger),
		Workspace: handler.NewWorkspaceHandler(c.workspaceService, c.logger),
		Contact:   handler.NewContactHandler(c.contactService, c.logger),
		Message:   handler.NewMessageHandler(c.messageService, c.logger),
		Settings:  handler.NewSettingsHandler(c.settingsService, c.logger),
	}

	c.logger.Debug("Container initialized successfully")
	return nil
}

// GetConfig retorna a configuração da aplicação
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger retorna o logger da aplicação
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetDatabase retorna a instância do banco de dados
func (c *Container) GetDatabase() *database.Database {
	return c.database
}

// GetWebhookService retorna o service de webhook
func (c *Container) GetWebhookService() *services.WebhookService {
	return c.webhookService
}

// GetContactService retorna o service de contatos
func (c *Container) GetContactService() *services.ContactService {
	return c.contactService
}

// GetMessageService retorna o service de mensagens
func (c *Container) GetMessageService() *services.MessageService {
	return c.messageService
}

// GetSettingsService retorna o service de configurações de chat
func (c *Container) GetSettingsService() *services.SettingsService {
	return c.settingsService
}

// Start inicia todos os componentes que precisam de inicialização
func (c *Container) Start(ctx context.Context) error {
	c.logger.Info("Starting container components...")

	if err := c.database.Health(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.logger.Info("Container components started successfully")
	return nil
}

// Stop para todos os componentes gracefully
func (c *Container) Stop(ctx context.Context) error {
	c.logger.Info("Stopping container components...")

	if err := c.database.Close(); err != nil {
		c.logger.ErrorWithFields("Failed to close database connection", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.logger.Info("Container components stopped successfully")
	return nil
}

// Handler retorna um handler HTTP completo com todas as rotas
func (c *Container) Handler() http.Handler {
	return router.SetupRoutes(c.config, c.logger, c.handlers)
}
