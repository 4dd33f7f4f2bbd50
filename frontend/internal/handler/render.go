package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
	"github.com/equipbook/equipbook/frontend/internal/favorites"
	"github.com/equipbook/equipbook/frontend/internal/middleware"
	"github.com/equipbook/equipbook/shared/domain"
	"github.com/equipbook/equipbook/shared/logger"
	mw "github.com/equipbook/equipbook/shared/middleware"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request, nav string) frontend_domain.CommonTemplateData {
	return frontend_domain.CommonTemplateData{
		User:          mw.GetUserFromContext(r),
		CSRFToken:     middleware.GetCSRFTokenFromContext(r),
		Notifications: h.Notifier.Pending(w, r),
		LoginURL:      h.Public.LoginURL,
		ActiveNav:     nav,
	}
}

// renderTemplate executes into a buffer first so a failing template does not
// leave a half-written page. Pending toasts are consumed here.
func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name, nav string, data any) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.initCommonTemplateData(w, r, nav),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

// document returns the favorite buttons of the current user.
func (h *Handler) document(r *http.Request) *favorites.Document {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return favorites.NewDocument()
	}
	return h.Documents.For(user.Id)
}

// renderCards attaches a favorite button per item, reconciles all of them
// with the user's listing and pairs each item with its button.
func (h *Handler) renderCards(r *http.Request, items []domain.Equipment) []frontend_domain.EquipmentCard {
	doc := h.document(r)
	for _, item := range items {
		doc.Add(item.Id)
	}
	if len(items) > 0 {
		h.Favorites.Reconcile(r, doc)
	}

	cards := make([]frontend_domain.EquipmentCard, 0, len(items))
	for _, item := range items {
		button, ok := doc.Button(item.Id)
		if !ok {
			button = doc.Add(item.Id)
		}
		cards = append(cards, frontend_domain.EquipmentCard{Item: item, Button: button})
	}
	return cards
}
