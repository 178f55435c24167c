package middleware

import (
	"context"
	"net/http"
	"strings"

	"stray-adoption/internal/platform/httpx"
	"stray-adoption/internal/ports/auth"
)

// CookieName es la cookie de sesión del API.
const CookieName = "adoption_session"

type ctxKey string

const identityKey ctxKey = "identity"

// SessionContext:
// - Si viene la cookie y el store reconoce el token => setea Identity en el ctx.
// - Si no hay cookie o el token no existe, el request sigue igual;
//   los handlers deciden si exigen auth (401) o rol (403).
func SessionContext(store auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || strings.TrimSpace(c.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, ok := store.Get(r.Context(), c.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// WithIdentity inyecta una identidad en el ctx. Solo para tests de handlers.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// RequireRole corta el request con 401/403 según corresponda.
// "no autenticado" y "rol equivocado" son errores distintos siempre.
func RequireRole(w http.ResponseWriter, r *http.Request, allowed ...auth.Role) (auth.Identity, bool) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "not authenticated")
		return auth.Identity{}, false
	}
	if !id.Role.OneOf(allowed...) {
		httpx.Error(w, http.StatusForbidden, "forbidden")
		return auth.Identity{}, false
	}
	return id, true
}
