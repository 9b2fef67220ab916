package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"flowcrm/internal/adapters/http/middleware"
	"flowcrm/platform/config"
	"flowcrm/platform/logger"
)

// setupMiddlewares configura todos os middlewares globais da aplicação
func setupMiddlewares(r *chi.Mux, cfg *config.Config, logger *logger.Logger) {
	// Panic recovery middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorWithFields("Panic recovered", map[string]interface{}{
						"error":  err,
						"path":   r.URL.Path,
						"method": r.Method,
					})
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	})

	// HTTP logging middleware
	r.Use(middleware.HTTPLogger(logger))

	// CORS middleware; os headers liberados cobrem os clientes web do CRM e
	// os bots parceiros que fazem POST no webhook
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"authorization", "x-client-info", "apikey", "content-type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API Key authentication middleware
	r.Use(middleware.APIKeyAuth(cfg, logger))
}
