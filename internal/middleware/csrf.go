package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
)

// CSRF protects form posts. JSON API requests are exempt: browsers cannot
// send application/json cross-origin without a CORS preflight.
func CSRF(authKey []byte, secure bool, trustedOrigins []string) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.TrustedOrigins(trustedOrigins),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
				next.ServeHTTP(w, r)
				return
			}
			if !secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	log.Printf("csrf_rejected method=%s path=%s reason=%q", r.Method, r.URL.Path, csrf.FailureReason(r))
	http.Error(w, "Your session expired. Reload the page and try again.", http.StatusForbidden)
}
