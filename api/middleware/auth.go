package middleware

import (
	"net/http"
	"strings"

	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/internal/store"
	pkgAuth "github.com/arguehive/debatehub-backend/pkg/auth"
	"github.com/arguehive/debatehub-backend/pkg/config"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

type userResolver interface {
	GetUserByID(id string) (*store.User, bool)
}

// Auth validates a bearer token, resolves the account against the store and
// seeds the request context with user id and role. The role comes from the
// store, not the token, so a role change takes effect on the next request.
func Auth(cfg config.JWTConfig, users userResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			user, ok := users.GetUserByID(claims.UserID)
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists"))
				return
			}

			ctx := WithUserID(r.Context(), user.ID)
			ctx = WithRole(ctx, string(user.Role))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    user.ID,
					"actor_role": string(user.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
