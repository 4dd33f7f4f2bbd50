package frontend_domain

import (
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/domain"
)

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	User          *domain.User
	CSRFToken     string // CSRF token for form submissions and the toggle script
	Notifications []notify.Notification
	LoginURL      string
	// ActiveNav names the navigation entry to highlight.
	ActiveNav string
}
