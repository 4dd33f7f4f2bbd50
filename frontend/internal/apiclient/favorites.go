package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
	"github.com/equipbook/equipbook/shared/errors"
)

const (
	msgFavoriteAdded   = "Added to favorites"
	msgFavoriteRemoved = "Removed from favorites"
)

// === Legacy favorites (/favorites) ===

func (c *APIClient) GetFavorites(r *http.Request) []domain.Favorite {
	var favorites []domain.Favorite
	if !c.read(r, "GetFavorites", "/favorites", &favorites) || favorites == nil {
		return []domain.Favorite{}
	}
	return favorites
}

func (c *APIClient) AddToFavorites(r *http.Request, id domain.EquipmentId) (api.Payload, error) {
	var result api.Payload
	body := api.FavoriteRequest{EquipmentId: id}
	if err := c.call(r, "AddToFavorites", http.MethodPost, "/favorites", body, &result, "failed to add to favorites"); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) RemoveFromFavorites(r *http.Request, id domain.EquipmentId) (api.Payload, error) {
	var result api.Payload
	body := api.FavoriteRequest{EquipmentId: id}
	if err := c.call(r, "RemoveFromFavorites", http.MethodDelete, "/favorites", body, &result, "failed to remove from favorites"); err != nil {
		return nil, err
	}
	return result, nil
}

// === Per-user favorites ===

// GetUserFavorites falls back to {Success: false, Favorites: []}.
func (c *APIClient) GetUserFavorites(r *http.Request) api.UserFavoritesResponse {
	const op = "GetUserFavorites"
	fallback := api.UserFavoritesResponse{Success: false, Favorites: []domain.Equipment{}}

	var raw struct {
		Success   bool            `json:"success"`
		Favorites json.RawMessage `json:"favorites"`
	}
	if !c.read(r, op, "/user/favorites", &raw) {
		return fallback
	}

	favorites := []domain.Equipment{}
	if isArray(raw.Favorites) {
		items, err := c.Normalizer.Items(raw.Favorites)
		if err != nil {
			c.fallback(op, errors.NewFailure(op, errors.ErrParse, err, "unexpected favorites shape", http.StatusOK))
			return fallback
		}
		favorites = items
	}
	return api.UserFavoritesResponse{Success: raw.Success, Favorites: favorites}
}

// IsEquipmentFavorited is false whenever the listing cannot be loaded.
func (c *APIClient) IsEquipmentFavorited(r *http.Request, id domain.EquipmentId) bool {
	favorites := c.GetUserFavorites(r)
	if !favorites.Success {
		return false
	}
	return domain.NewFavoriteSet(favorites.Favorites).Contains(id)
}

func (c *APIClient) GetFavoritesCount(r *http.Request, id domain.EquipmentId) api.FavoritesCountResponse {
	var count api.FavoritesCountResponse
	if !c.read(r, "GetFavoritesCount", fmt.Sprintf("/equipment/%d/favorites/count", id), &count) {
		return api.FavoritesCountResponse{Success: false, Count: 0}
	}
	return count
}

// ToggleFavorite asks the backend to flip the favorite and reports the
// direction the backend chose. It never returns an error; failure is
// Success == false with Error set.
func (c *APIClient) ToggleFavorite(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
	return c.toggle(r, "ToggleFavorite", id, http.MethodPost, true)
}

// ToggleFavoriteWithState is ToggleFavorite for callers that know the
// current state: DELETE when favorited, POST otherwise. When the backend does
// not report the new state it is assumed to be the opposite of favorited.
func (c *APIClient) ToggleFavoriteWithState(r *http.Request, id domain.EquipmentId, favorited bool) api.ToggleFavoriteResult {
	method := http.MethodPost
	if favorited {
		method = http.MethodDelete
	}
	return c.toggle(r, "ToggleFavoriteWithState", id, method, !favorited)
}

func (c *APIClient) toggle(r *http.Request, op string, id domain.EquipmentId, method string, assumed bool) api.ToggleFavoriteResult {
	var resp api.ToggleFavoriteResponse
	path := fmt.Sprintf("/equipment/%d/favorite", id)
	err := c.call(r, op, method, path, nil, &resp, "failed to update favorites")
	if err == nil && resp.Success != nil && !*resp.Success {
		err = errors.NewFailure(op, errors.ErrApplication, nil, "failed to update favorites", http.StatusOK)
	}
	if err != nil {
		c.fallback(op, err)
		return api.ToggleFavoriteResult{Success: false, Error: err.Error()}
	}

	favorited := assumed
	if resp.Favorited != nil {
		favorited = *resp.Favorited
	}
	message := resp.Message
	if message == "" {
		message = msgFavoriteRemoved
		if favorited {
			message = msgFavoriteAdded
		}
	}
	return api.ToggleFavoriteResult{Success: true, Favorited: favorited, Message: message}
}
