// Package notify shows short-lived toast notifications. A toast raised while
// handling one request travels to the next rendered page in a flash cookie;
// script callers get it inline in their JSON response instead.
package notify

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/equipbook/equipbook/shared/logger"
	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// ParseSeverity maps anything it does not know to Info.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case Success, Error:
		return Severity(s)
	default:
		return Info
	}
}

var backgrounds = map[Severity]string{
	Success: "linear-gradient(135deg, #28a745, #20c997)",
	Error:   "linear-gradient(135deg, #dc3545, #e83e8c)",
	Info:    "linear-gradient(135deg, #667eea, #764ba2)",
}

const (
	EnterDelay      = 100 * time.Millisecond
	ExitDuration    = 300 * time.Millisecond
	DefaultDuration = 4 * time.Second
	MinDuration     = 3 * time.Second
	MaxDuration     = 4 * time.Second

	// Toasts shown together stack downwards from TopOffset, one Spacing apart.
	TopOffset = 20
	Spacing   = 72

	cookieName = "flash_toasts"
	// keeps the cookie well under the browser size limit
	maxQueued = 5
)

// Notification is one toast as templates and scripts render it.
type Notification struct {
	ID           string        `json:"id"`
	Message      string        `json:"message"`
	Severity     Severity      `json:"severity"`
	Background   string        `json:"background"`
	EnterDelay   time.Duration `json:"enter_delay"`
	Duration     time.Duration `json:"duration"`
	ExitDuration time.Duration `json:"exit_duration"`
	Offset       int           `json:"offset"`
}

// Style is the inline style of the toast element. The values are constants
// of this package, so the result is marked safe for html/template.
func (n Notification) Style() template.CSS {
	return template.CSS(fmt.Sprintf("top: %dpx; background: %s;", n.Offset, n.Background))
}

// Lifetime is how long the toast stays in the document, transitions included.
func (n Notification) Lifetime() time.Duration {
	return n.EnterDelay + n.Duration + n.ExitDuration
}

// queued is the cookie form of a toast; presentation is recomputed on read.
type queued struct {
	ID       string   `json:"id"`
	Message  string   `json:"msg"`
	Severity Severity `json:"sev"`
}

type Options struct {
	Duration      time.Duration
	SecureCookies bool
}

type Presenter struct {
	duration      time.Duration
	secureCookies bool
}

// New returns a presenter. A zero duration uses DefaultDuration, anything
// else is clamped to [MinDuration, MaxDuration].
func New(opts Options) *Presenter {
	duration := opts.Duration
	switch {
	case duration == 0:
		duration = DefaultDuration
	case duration < MinDuration:
		duration = MinDuration
	case duration > MaxDuration:
		duration = MaxDuration
	}
	return &Presenter{duration: duration, secureCookies: opts.SecureCookies}
}

func (p *Presenter) present(q queued, position int) Notification {
	severity := ParseSeverity(string(q.Severity))
	return Notification{
		ID:           q.ID,
		Message:      q.Message,
		Severity:     severity,
		Background:   backgrounds[severity],
		EnterDelay:   EnterDelay,
		Duration:     p.duration,
		ExitDuration: ExitDuration,
		Offset:       TopOffset + position*Spacing,
	}
}

// Show queues a toast for the next page the browser renders. Toasts already
// waiting in r's cookie are kept; only the newest maxQueued survive.
func (p *Presenter) Show(w http.ResponseWriter, r *http.Request, message string, severity Severity) {
	p.Flash(w, r).Notify(message, severity)
}

// Flash binds the presenter to one response. Every Notify rewrites the
// cookie with all toasts queued so far.
func (p *Presenter) Flash(w http.ResponseWriter, r *http.Request) *Flash {
	return &Flash{p: p, w: w, r: r}
}

type Flash struct {
	p      *Presenter
	w      http.ResponseWriter
	r      *http.Request
	queue  []queued
	loaded bool
}

func (f *Flash) Notify(message string, severity Severity) {
	if !f.loaded {
		f.queue = readQueue(f.r)
		f.loaded = true
	}
	f.queue = append(f.queue, queued{ID: uuid.NewString(), Message: message, Severity: ParseSeverity(string(severity))})
	if len(f.queue) > maxQueued {
		f.queue = f.queue[len(f.queue)-maxQueued:]
	}
	f.p.writeQueue(f.w, f.queue)
}

func (p *Presenter) writeQueue(w http.ResponseWriter, queue []queued) {
	encoded, err := json.Marshal(queue)
	if err != nil {
		logger.Log.Error("failed to encode notifications", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   p.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Inline collects toasts for a JSON response instead of queueing them.
func (p *Presenter) Inline() *Inline {
	return &Inline{p: p}
}

type Inline struct {
	p             *Presenter
	Notifications []Notification
}

func (in *Inline) Notify(message string, severity Severity) {
	q := queued{ID: uuid.NewString(), Message: message, Severity: severity}
	in.Notifications = append(in.Notifications, in.p.present(q, len(in.Notifications)))
}

// Pending returns the toasts queued for this page and clears the queue.
// Toasts are offset so they stack instead of overlapping.
func (p *Presenter) Pending(w http.ResponseWriter, r *http.Request) []Notification {
	if _, err := r.Cookie(cookieName); err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	queue := readQueue(r)
	notifications := make([]Notification, len(queue))
	for i, q := range queue {
		notifications[i] = p.present(q, i)
	}
	return notifications
}

func readQueue(r *http.Request) []queued {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		logger.Log.Warn("discarding malformed notification cookie", "error", err)
		return nil
	}
	var queue []queued
	if err := json.Unmarshal(decoded, &queue); err != nil {
		logger.Log.Warn("discarding malformed notification cookie", "error", err)
		return nil
	}
	return queue
}
