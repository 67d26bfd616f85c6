package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tragkas/portfolio/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// requireAuth rejects requests without a valid bearer token and otherwise
// stores the token claims in the request context. Absent token means 401,
// an invalid or expired one 403.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusForbidden, "invalid authorization header")
			return
		}

		claims, err := auth.ValidateToken(tokenString, s.secret)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

func claimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
