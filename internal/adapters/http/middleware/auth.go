package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"flowcrm/internal/adapters/http/shared"
	"flowcrm/platform/config"
	"flowcrm/platform/logger"
)

type contextKey string

const (
	apiKeyContextKey        contextKey = "api_key"
	authenticatedContextKey contextKey = "authenticated"
)

// APIKeyAuth middleware para autenticação via API key
func APIKeyAuth(cfg *config.Config, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			// Pular autenticação para rotas públicas
			if isPublicRoute(path) {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := extractAPIKey(r)
			if apiKey == "" {
				log.WarnWithFields("Missing API key", map[string]interface{}{
					"path":   path,
					"method": r.Method,
					"ip":     shared.GetClientIP(r),
				})

				writeUnauthorizedResponse(w, "API key is required. Provide it via Authorization header or X-API-Key header")
				return
			}

			if !isValidAPIKey(apiKey, cfg) {
				log.WarnWithFields("Invalid API key", map[string]interface{}{
					"path":    path,
					"method":  r.Method,
					"ip":      shared.GetClientIP(r),
					"api_key": maskAPIKey(apiKey),
				})

				writeUnauthorizedResponse(w, "Invalid API key")
				return
			}

			log.DebugWithFields("API key authenticated", map[string]interface{}{
				"path":    path,
				"method":  r.Method,
				"api_key": maskAPIKey(apiKey),
			})

			ctx := context.WithValue(r.Context(), apiKeyContextKey, apiKey)
			ctx = context.WithValue(ctx, authenticatedContextKey, true)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute verifica se a rota é pública (não requer autenticação)
// O webhook é público: bots parceiros não carregam credenciais do CRM
func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/health",
		"/swagger",
		"/webhook",
	}

	for _, route := range publicRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}

	return false
}

// extractAPIKey extrai API key dos headers da requisição
func extractAPIKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Suportar formato "Bearer <token>" e token direto
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer ")
		}
		return authHeader
	}

	return r.Header.Get("X-API-Key")
}

// isValidAPIKey valida se API key é válida
func isValidAPIKey(apiKey string, cfg *config.Config) bool {
	return cfg.Security.APIKey != "" && apiKey == cfg.Security.APIKey
}

// writeUnauthorizedResponse escreve resposta de não autorizado
func writeUnauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	response := shared.ErrorResponse{
		Success: false,
		Error:   "Unauthorized",
		Details: message,
	}

	json.NewEncoder(w).Encode(response)
}

// maskAPIKey mascara API key para logs (mostra apenas primeiros e últimos caracteres)
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return strings.Repeat("*", len(apiKey))
	}

	return apiKey[:4] + strings.Repeat("*", len(apiKey)-8) + apiKey[len(apiKey)-4:]
}
