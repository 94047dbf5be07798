package middleware

import (
	"context"
	"net/http"
	"strings"

	"creatorlab/internal/model"
	"creatorlab/internal/service"
)

type contextKey string

const AuthorKey contextKey = "author"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCreator validates a creator JWT from the Authorization header
func (m *AuthMiddleware) RequireCreator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		token := extractBearerToken(r)
		if token == "" {
			writeUnauthorized(w, "missing authorization header")
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := WithAuthor(r.Context(), m.authSvc.Author(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithAuthor stores the authenticated author in ctx
func WithAuthor(ctx context.Context, a model.Author) context.Context {
	return context.WithValue(ctx, AuthorKey, a)
}

// GetAuthor extracts the authenticated author from context
func GetAuthor(ctx context.Context) (model.Author, bool) {
	a, ok := ctx.Value(AuthorKey).(model.Author)
	return a, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
