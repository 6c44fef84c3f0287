package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/auth"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// Auth attaches the bearer's identity to the context. Requests without a
// token pass through anonymously; an invalid token is rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := validator.ValidateToken(token)
			if err != nil {
				abort(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
				return
			}
			recordUser(r.Context(), id.UserID)
			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithUserRole(ctx, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			abort(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers that are not administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.UserRoleFromCtx(r.Context()) != domain.UserRoleAdmin.String() {
			abort(w, http.StatusForbidden, "FORBIDDEN", "administrator role required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
