package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/adboardhq/adboard-api/internal/usecases/identifying"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPath indica rotas servidas sem token: healthcheck, métricas e o
// caminho público de veiculação de anúncios (superfícies de exibição não
// são autenticadas)
func publicPath(path string) bool {
	if path == "/healthcheck" || path == "/metrics" {
		return true
	}
	return strings.HasPrefix(path, "/v1/placements/")
}

func AuthMiddleware(verifier identifying.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
