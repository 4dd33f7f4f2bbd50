package middleware

import (
	"net/http"
)

// pageCSP allows the inline style attributes the toast partial renders and
// images from any https origin, since equipment photos may be full URLs.
const pageCSP = "default-src 'self'; img-src 'self' https: data:; style-src 'self' 'unsafe-inline'; script-src 'self'; frame-ancestors 'none'"

// SecurityHeaders adds the response headers every rendered page carries.
// isHTTPS adds Strict-Transport-Security.
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			headers.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
			headers.Set("Content-Security-Policy", pageCSP)
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
