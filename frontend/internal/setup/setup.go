package setup

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/equipbook/equipbook/frontend/internal/apiclient"
	"github.com/equipbook/equipbook/frontend/internal/favorites"
	"github.com/equipbook/equipbook/frontend/internal/handler"
	"github.com/equipbook/equipbook/frontend/internal/markdown"
	"github.com/equipbook/equipbook/frontend/internal/middleware"
	"github.com/equipbook/equipbook/frontend/internal/middleware/ratelimiter"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/config"
	"github.com/equipbook/equipbook/shared/jwt"
	"github.com/equipbook/equipbook/shared/logger"
	mw "github.com/equipbook/equipbook/shared/middleware"
)

const (
	baseTemplate           = "base.html"
	partialsTemplate       = "partials.html"
	templateReloadInterval = 5 * time.Second
	// the frontend only decodes tokens issued by the backend
	jwtTTL = 30 * 24 * time.Hour
)

type Dependencies struct {
	Handler *handler.Handler
	Auth    *middleware.Auth
	Limiter *ratelimiter.Limiter // nil when rate limiting is off
	Public  config.Public
}

// SetupDependencies builds every dependency once. The API client is shared
// by the handler and the favorites controller.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates, err := loadTemplates(cfg.Public.TemplatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	apiClient := apiclient.New(cfg.Public.API.BaseURL, apiclient.Options{
		Timeout: cfg.Public.API.Timeout,
		Normalizer: apiclient.Normalizer{
			PlaceholderImage: cfg.Public.Images.Placeholder,
			EquipmentDir:     cfg.Public.Images.EquipmentDir,
			DefaultPerPage:   cfg.Public.API.DefaultPerPage,
		},
		PopularLimit: cfg.Public.API.PopularLimit,
	})
	notifier := notify.New(notify.Options{
		Duration:      cfg.Public.Notifications.Duration,
		SecureCookies: cfg.Public.SecureCookies,
	})
	controller := favorites.NewController(apiClient, apiClient)

	h := handler.New(templates, cfg.Public, markdown.New(), apiClient, controller, notifier)
	startTemplateReloader(h, cfg.Public.TemplatesPath)

	jwtSvc := jwt.New(cfg.JwtKey(), jwtTTL)
	auth := middleware.NewAuth(mw.NewAuth(jwtSvc), notifier, cfg.Public.LoginURL)

	var limiter *ratelimiter.Limiter
	if rl := cfg.Public.RateLimit; rl.Burst > 0 {
		limiter = ratelimiter.New(rl.Rate, rl.Burst, rl.Idle)
	}

	return &Dependencies{
		Handler: h,
		Auth:    auth,
		Limiter: limiter,
		Public:  cfg.Public,
	}, nil
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func millis(d time.Duration) int64 { return d.Milliseconds() }

func dict(values ...any) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

var funcs = template.FuncMap{
	"sub":          sub,
	"add":          add,
	"dict":         dict,
	"millis":       millis,
	"pulseMillis":  func() int64 { return favorites.PulseDuration.Milliseconds() },
	"statusLabel":  statusLabel,
	"bookingClass": bookingClass,
}

func statusLabel(status string) string {
	switch status {
	case "available":
		return "Available"
	case "maintenance", "repair":
		return "In repair"
	case "booked":
		return "Booked"
	default:
		return "Unavailable"
	}
}

func bookingClass(status string) string {
	switch status {
	case "confirmed", "completed":
		return "badge-success"
	case "rejected", "cancelled":
		return "badge-danger"
	default:
		return "badge-warning"
	}
}

// loadTemplates parses every page template together with the base layout and
// the shared partials.
func loadTemplates(tmplPath string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) != ".html" || f.Name() == baseTemplate || f.Name() == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFiles(
			path.Join(tmplPath, baseTemplate),
			path.Join(tmplPath, f.Name()),
			path.Join(tmplPath, partialsTemplate),
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name(), err)
		}
		templates[f.Name()] = tmpl
	}
	return templates, nil
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") != "development" {
		return
	}
	ticker := time.NewTicker(templateReloadInterval)
	go func() {
		for range ticker.C {
			templates, err := loadTemplates(tmplPath)
			if err != nil {
				logger.Log.Error("template reload failed", "error", err)
				continue
			}
			h.Templates = templates
		}
	}()
}
