package middleware

import (
	"crypto/subtle"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const MCPSecretHeader = "X-MESO-MCP-SECRET"

// RequireSecret lets through only requests carrying the shared secret in the given header.
// With an empty secret every request is rejected.
func RequireSecret(header, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				log.Tracef("[secret check] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
