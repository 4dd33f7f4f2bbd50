package handler

import (
	"fmt"
	"net/http"
	"strings"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
)

func parseFilter(r *http.Request) api.EquipmentFilter {
	return api.EquipmentFilter{
		Category: strings.TrimSpace(r.FormValue("category")),
		Status:   strings.TrimSpace(r.FormValue("status")),
		Search:   strings.TrimSpace(r.FormValue("search")),
		Page:     formInt(r, "page"),
		PerPage:  formInt(r, "per_page"),
	}
}

func (h *Handler) EquipmentListHandler(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	var page domain.EquipmentPage
	if filter.Category == "" && filter.Status == "" && filter.Search == "" {
		page = h.APIClient.GetAllEquipment(r, filter.Page, filter.PerPage)
	} else {
		page = h.APIClient.FilterEquipment(r, filter)
	}

	data := frontend_domain.EquipmentPageData{
		Cards:      h.renderCards(r, page.Items),
		Categories: h.APIClient.GetCategories(r),
		Filter:     filter,
		Total:      page.Total,
		Pages:      page.Pages,
		Page:       page.CurrentPage,
		PerPage:    page.PerPage,
	}
	h.renderTemplate(w, r, "equipment.html", "equipment", data)
}

func (h *Handler) EquipmentDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := equipmentID(r)
	if err != nil {
		h.Notifier.Show(w, r, err.Error(), notify.Error)
		http.Redirect(w, r, "/equipment", http.StatusSeeOther)
		return
	}

	item := h.APIClient.GetEquipmentByID(r, id)
	if item == nil {
		h.Notifier.Show(w, r, fmt.Sprintf("Equipment #%d is not available", id), notify.Error)
		http.Redirect(w, r, "/equipment", http.StatusSeeOther)
		return
	}

	cards := h.renderCards(r, []domain.Equipment{*item})
	data := frontend_domain.EquipmentDetailPageData{
		Card:           cards[0],
		Description:    h.TextProcessor.Render(item.Description),
		Specifications: h.TextProcessor.Render(item.Specifications),
		Requirements:   h.TextProcessor.Render(item.Requirements),
		Availability:   h.APIClient.CheckAvailability(r, id),
		FavoritesCount: h.APIClient.GetFavoritesCount(r, id).Count,
	}
	h.renderTemplate(w, r, "equipment_detail.html", "equipment", data)
}
