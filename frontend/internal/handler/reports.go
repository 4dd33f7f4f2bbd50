package handler

import (
	"net/http"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
)

func (h *Handler) ReportsGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.ReportsPageData{Reports: h.APIClient.GetReports(r)}
	h.renderTemplate(w, r, "reports.html", "reports", data)
}

func (h *Handler) AdminGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.AdminPageData{
		Stats:   h.APIClient.GetStats(r),
		Reports: h.APIClient.GetReports(r),
	}
	h.renderTemplate(w, r, "admin.html", "admin", data)
}
