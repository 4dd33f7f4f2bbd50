package middleware

import (
	"net/http"

	"github.com/equipbook/equipbook/frontend/internal/notify"
	mw "github.com/equipbook/equipbook/shared/middleware"
)

// Auth wraps shared auth middleware with redirect behavior for frontend
type Auth struct {
	sharedAuth *mw.Auth
	notifier   *notify.Presenter
	loginURL   string
}

// NewAuth creates a frontend auth middleware wrapper. Rejected requests are
// sent to loginURL with an error toast.
func NewAuth(sharedAuth *mw.Auth, notifier *notify.Presenter, loginURL string) *Auth {
	return &Auth{
		sharedAuth: sharedAuth,
		notifier:   notifier,
		loginURL:   loginURL,
	}
}

// NeedAuth returns middleware with redirect behavior
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.wrapWithRedirect(a.sharedAuth.NeedAuth())
}

// AdminOnly returns admin middleware with redirect behavior
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.wrapWithRedirect(a.sharedAuth.AdminOnly())
}

// authRedirectWriter intercepts 401/403 errors and redirects to login
type authRedirectWriter struct {
	http.ResponseWriter
	request    *http.Request
	auth       *Auth
	redirected bool
}

func (w *authRedirectWriter) WriteHeader(statusCode int) {
	if w.redirected {
		return
	}

	switch statusCode {
	case http.StatusUnauthorized:
		w.redirected = true
		w.auth.redirectToLogin(w.ResponseWriter, w.request, "Please log in to continue")
	case http.StatusForbidden:
		w.redirected = true
		w.auth.redirectToLogin(w.ResponseWriter, w.request, "Access denied")
	default:
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *authRedirectWriter) Write(data []byte) (int, error) {
	if w.redirected {
		return len(data), nil // Discard body after redirect
	}
	return w.ResponseWriter.Write(data)
}

func (a *Auth) redirectToLogin(w http.ResponseWriter, r *http.Request, errorMsg string) {
	a.notifier.Show(w, r, errorMsg, notify.Error)
	http.Redirect(w, r, a.loginURL, http.StatusSeeOther)
}

// wrapWithRedirect wraps any middleware to intercept auth errors
func (a *Auth) wrapWithRedirect(authMiddleware func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &authRedirectWriter{
				ResponseWriter: w,
				request:        r,
				auth:           a,
			}
			authMiddleware(next).ServeHTTP(wrapper, r)
		})
	}
}
