package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
	"github.com/equipbook/equipbook/frontend/internal/favorites"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/utils"
)

const msgTogglePending = "Your previous request is still being processed"

// toggleResponse is what script callers of the toggle route receive: the
// client result, the button as it now renders, and the toasts to show.
type toggleResponse struct {
	api.ToggleFavoriteResult
	Class         string                `json:"class,omitempty"`
	Icon          string                `json:"icon,omitempty"`
	Disabled      bool                  `json:"disabled"`
	Notifications []notify.Notification `json:"notifications"`
}

// ToggleFavoriteHandler serves every favorite button. Buttons inserted after
// the page was rendered are attached on their first click.
func (h *Handler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := equipmentID(r)
	if err != nil {
		if wantsJSON(r) {
			utils.WriteJSON(w, http.StatusBadRequest, api.ToggleFavoriteResult{Success: false, Error: err.Error()})
			return
		}
		h.Notifier.Show(w, r, err.Error(), notify.Error)
		http.Redirect(w, r, returnPath(r, "/equipment"), http.StatusSeeOther)
		return
	}

	doc := h.document(r)
	doc.Add(id)

	if wantsJSON(r) {
		inline := h.Notifier.Inline()
		result, err := h.Favorites.Toggle(r, doc, id, inline)
		if err != nil {
			status := http.StatusInternalServerError
			message := err.Error()
			if errors.Is(err, favorites.ErrPending) {
				status, message = http.StatusConflict, msgTogglePending
			}
			utils.WriteJSON(w, status, api.ToggleFavoriteResult{Success: false, Error: message})
			return
		}

		resp := toggleResponse{ToggleFavoriteResult: result, Notifications: inline.Notifications}
		if button, ok := doc.Button(id); ok {
			resp.Class, resp.Icon, resp.Disabled = button.Class(), button.Icon, button.Disabled
		}
		utils.WriteJSON(w, http.StatusOK, resp)
		return
	}

	flash := h.Notifier.Flash(w, r)
	if _, err := h.Favorites.Toggle(r, doc, id, flash); err != nil {
		if errors.Is(err, favorites.ErrPending) {
			flash.Notify(msgTogglePending, notify.Info)
		} else {
			flash.Notify(err.Error(), notify.Error)
		}
	}
	http.Redirect(w, r, returnPath(r, fmt.Sprintf("/equipment/%d", id)), http.StatusSeeOther)
}

func (h *Handler) FavoritesGetHandler(w http.ResponseWriter, r *http.Request) {
	listing := h.APIClient.GetUserFavorites(r)
	data := frontend_domain.FavoritesPageData{
		Cards:  h.renderCards(r, listing.Favorites),
		Loaded: listing.Success,
	}
	h.renderTemplate(w, r, "favorites.html", "favorites", data)
}

// legacyFavoriteRequest validates the equipment_id form field of the legacy
// add/remove forms.
func legacyFavoriteRequest(r *http.Request) (api.FavoriteRequest, error) {
	id, _ := strconv.ParseInt(r.FormValue("equipment_id"), 10, 64)
	req := api.FavoriteRequest{EquipmentId: id}
	return req, utils.ValidateStruct(req)
}

func (h *Handler) FavoriteAddHandler(w http.ResponseWriter, r *http.Request) {
	target := returnPath(r, "/favorites")
	req, err := legacyFavoriteRequest(r)
	if err != nil {
		h.Notifier.Show(w, r, err.Error(), notify.Error)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if _, err := h.APIClient.AddToFavorites(r, req.EquipmentId); err != nil {
		h.Notifier.Show(w, r, h.TextProcessor.Plain(err.Error()), notify.Error)
	} else {
		h.Notifier.Show(w, r, "Added to favorites", notify.Success)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) FavoriteDeleteHandler(w http.ResponseWriter, r *http.Request) {
	target := returnPath(r, "/favorites")
	req, err := legacyFavoriteRequest(r)
	if err != nil {
		h.Notifier.Show(w, r, err.Error(), notify.Error)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if _, err := h.APIClient.RemoveFromFavorites(r, req.EquipmentId); err != nil {
		h.Notifier.Show(w, r, h.TextProcessor.Plain(err.Error()), notify.Error)
	} else {
		h.Notifier.Show(w, r, "Removed from favorites", notify.Info)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
