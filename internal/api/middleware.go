package api

import (
	"net/http"
	"time"

	"github.com/bnema/sinkhole/internal/logging"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// requestLogger attaches the base logger to the request context and logs
// one line per completed request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithContext(r.Context(), logger)
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", r.RemoteAddr).
				Msg("request")
		})
	}
}

// AuthHeader carries the admin token on protected requests.
const AuthHeader = "X-Sinkhole-Authenticate"

// requireAuth guards mutating endpoints. The presented token is checked
// against the configured bcrypt hash; with no hash configured every
// protected request is rejected, never silently allowed.
func requireAuth(passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				replyError(w, http.StatusUnauthorized, "unauthorized", "no API password configured")
				return
			}

			token := r.Header.Get(AuthHeader)
			if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(token)); err != nil {
				logging.FromContext(r.Context()).Warn().
					Str("remote", r.RemoteAddr).
					Msg("rejected request with bad credentials")
				replyError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
