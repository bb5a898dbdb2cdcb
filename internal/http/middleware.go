package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	"github.com/srec-coin/coin-backend/internal/ports"
)

// Gate messages. Clients match on these strings, so they are fixed.
const (
	msgMissingAuthHeader = "Missing authorization header"
	msgInvalidAuthHeader = "Invalid authorization header"
	msgInvalidToken      = "Invalid token"
	msgAuthRequired      = "Authentication required"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					WriteError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns the authentication gate. It extracts the bearer token
// from the Authorization header, verifies it, and attaches the claims to the
// request context. Each failure mode has a distinct 401 message so clients
// can tell a missing header from a malformed one from a bad token.
func RequireAuth(tokens ports.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, http.StatusUnauthorized, msgMissingAuthHeader)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteError(w, http.StatusUnauthorized, msgInvalidAuthHeader)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := SetClaimsInContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns the role guard. It runs after RequireAuth and rejects
// principals whose role does not exactly match: there is no role hierarchy,
// an admin token does not open student routes or vice versa.
func RequireRole(required domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			if claims.Role != required {
				WriteError(w, http.StatusForbidden, required.Label()+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
