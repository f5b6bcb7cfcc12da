package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/copipaste/agencia-SGE/internal/usecase"
)

type contextKey string

const claimsKey contextKey = "claims"

// claimsFrom returns the authenticated claims stored by the auth middleware.
func claimsFrom(ctx context.Context) (*usecase.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*usecase.Claims)
	return claims, ok
}

// authMiddleware rejects requests without a valid bearer token and stores
// the claims in the request context.
func authMiddleware(auth *usecase.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireStaff limits a route to admin or agent accounts.
func requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r.Context())
		if !ok || (!claims.IsAdmin && !claims.IsAgente) {
			writeError(w, http.StatusForbidden, "staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin limits a route to admin accounts.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r.Context())
		if !ok || !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
