// Package middleware holds HTTP middleware that is configured from the
// environment rather than constructed around application state.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"conduit/pkg/config"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// A single "*" entry allows any origin.
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// AllowCredentials must be true for Authorization header based auth.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int
}

// LoadCORSConfig builds a CORSConfig from environment variables.
//
//	CORS_ALLOWED_ORIGINS  comma separated origin whitelist (default http://localhost:3000)
//	CORS_ALLOWED_METHODS  comma separated method list
//	CORS_ALLOWED_HEADERS  comma separated header list
//	CORS_MAX_AGE          preflight cache lifetime in seconds (default 86400)
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: config.GetEnvStringList("CORS_ALLOWED_ORIGINS",
			[]string{"http://localhost:3000"}),
		AllowedMethods: config.GetEnvStringList("CORS_ALLOWED_METHODS",
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS",
			[]string{"Content-Type", "Authorization", "X-Request-ID"}),
		AllowCredentials: config.GetEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           config.GetEnvInt("CORS_MAX_AGE", 86400),
	}
}

func (c CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// CORS returns an HTTP middleware that handles cross-origin requests.
//
// Behavior:
//   - Requests without an Origin header pass through untouched (same-origin)
//   - Disallowed origins pass through without CORS headers, the browser
//     blocks the response
//   - Preflight OPTIONS requests for allowed origins are answered with
//     204 No Content and never reach the next handler
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !cfg.originAllowed(origin) {
				slog.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			// Echo back the request origin (required for credentials)
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
