package api

import "github.com/equipbook/equipbook/shared/domain"

// Payload is an opaque JSON object passed between browser and backend
// without interpretation.
type Payload = map[string]any

// ErrorResponse is the body the backend sends on failure, and sometimes on
// success with a 2xx status.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// EquipmentFilter holds the optional filters of the list and filter calls.
// Zero values are left out of the query string.
type EquipmentFilter struct {
	Category string
	Status   string
	Search   string
	Page     int
	PerPage  int
}

// === Bookings ===

type CreateBookingRequest struct {
	EquipmentId domain.EquipmentId `json:"equipment_id"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Purpose     string             `json:"purpose,omitempty"`
}

// === Favorites ===

type FavoriteRequest struct {
	EquipmentId domain.EquipmentId `json:"equipment_id" validate:"required,gt=0"`
}

type UserFavoritesResponse struct {
	Success   bool               `json:"success"`
	Favorites []domain.Equipment `json:"favorites"`
}

type FavoritesCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// ToggleFavoriteResponse is the backend body of /equipment/{id}/favorite.
// Favorited is a pointer because older backends omit it.
type ToggleFavoriteResponse struct {
	Success   *bool  `json:"success"`
	Favorited *bool  `json:"favorited"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

// ToggleFavoriteResult is what the client reports for a toggle. It never
// comes with an error: failure is Success == false with Error set.
type ToggleFavoriteResult struct {
	Success   bool   `json:"success"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}
