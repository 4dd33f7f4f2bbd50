package handler

import (
	"net/http"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.IndexPageData{
		Stats:           h.APIClient.GetStats(r),
		Popular:         h.renderCards(r, h.APIClient.GetPopularEquipment(r, 0)),
		Recommendations: h.renderCards(r, h.APIClient.GetRecommendations(r)),
		Notifications:   h.APIClient.GetNotifications(r),
	}
	h.renderTemplate(w, r, "index.html", "home", data)
}
