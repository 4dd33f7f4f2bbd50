package middleware

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/equipbook/equipbook/frontend/internal/middleware/ratelimiter"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/logger"
	mw "github.com/equipbook/equipbook/shared/middleware"
	"github.com/equipbook/equipbook/shared/utils"
)

const msgRateLimited = "Too many requests, please slow down"

// RateLimit throttles unsafe requests per user, or per client address when
// nobody is logged in. Script callers get a 429 with a JSON body; form posts
// get an error toast and go back to the page they came from. A nil limiter
// lets everything through.
func RateLimit(limiter *ratelimiter.Limiter, notifier *notify.Presenter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			identity := clientIdentity(r)
			if limiter.Allow(identity) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Log.Warn("rate limit exceeded", "identity", identity, "path", r.URL.Path)
			if wantsJSON(r) {
				utils.WriteJSON(w, http.StatusTooManyRequests, api.ErrorResponse{Error: msgRateLimited})
				return
			}
			notifier.Show(w, r, msgRateLimited, notify.Error)
			http.Redirect(w, r, refererPath(r), http.StatusSeeOther)
		})
	}
}

func clientIdentity(r *http.Request) string {
	if user := mw.GetUserFromContext(r); user != nil {
		return "user:" + strconv.FormatInt(user.Id, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// refererPath is the local page the request came from, or "/".
func refererPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
