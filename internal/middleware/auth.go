package middleware

import (
	"net/http"
	"strings"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

// LoginChecker reports whether an operator is logged in.
type LoginChecker interface {
	IsLogged() bool
}

// protectedPrefixes are the routes that need a logged-in operator.
var protectedPrefixes = []string{
	"/api/cart",
	"/api/checkout",
	"/api/orders",
	"/api/scan",
}

// RequireLogin rejects requests to protected routes while no operator is
// logged in. Health and auth routes stay open.
func RequireLogin(session LoginChecker, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path) || session.IsLogged() {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request rejected, not logged in")
			writeError(w, r, http.StatusUnauthorized, model.ErrNotLoggedIn.Code, model.ErrNotLoggedIn.Message)
		})
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
