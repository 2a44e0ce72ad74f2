package middleware

import (
	"net/http"
	"strings"

	"dapuribu-be/internal/user"
	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
)

// ExtractAccessToken prefers the session cookie, falling back to the
// Authorization header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// Authenticate resolves the session, if any, into the request context.
// Anonymous requests pass through untouched; route handlers decide what
// requires a session.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
			ctx = utils.WithDeviceID(ctx, deviceID)
		}

		if tokenStr := ExtractAccessToken(r); tokenStr != "" {
			if claims, err := user.ParseJWT(tokenStr); err == nil {
				ctx = utils.SetUserContext(ctx, claims.UserID, claims.Email, claims.Role)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without an authenticated session.
func RequireAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r, ps)
	}
}

// RequireAdmin gates a route on the administrative role.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if utils.GetUserRoleFromContext(r.Context()) != string(user.RoleAdmin) {
			utils.WriteJSONError(w, "admin role required", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	}
}
