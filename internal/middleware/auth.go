package middleware

import (
	"net/http"
	"strings"

	"github.com/AswiniParameswaran/GreenCart-System/internal/user"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

// extractBearerToken reads the credential from the access_token cookie or,
// failing that, the Authorization header.
func extractBearerToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthMiddleware resolves the caller from the bearer credential and stores
// it in the request context. Requests without a valid token continue
// anonymously; each handler decides whether authentication is required.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractBearerToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
