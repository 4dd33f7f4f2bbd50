package frontend_domain

import (
	"github.com/equipbook/equipbook/frontend/internal/favorites"
	"github.com/equipbook/equipbook/shared/domain"
)

// EquipmentCard is the typed data for the "equipment-card" template partial.
type EquipmentCard struct {
	Item   domain.Equipment
	Button favorites.Button
}

// FavoriteButtonData is the typed data for the "favorite-button" partial.
type FavoriteButtonData struct {
	Button    favorites.Button
	CSRFToken string
	// Return is where the no-script form post redirects back to.
	Return string
}
