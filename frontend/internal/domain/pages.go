package frontend_domain

import (
	"html/template"

	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
)

type IndexPageData struct {
	Stats           domain.Stats
	Popular         []EquipmentCard
	Recommendations []EquipmentCard
	Notifications   []domain.UserNotification
}

type EquipmentPageData struct {
	Cards      []EquipmentCard
	Categories []domain.Category
	Filter     api.EquipmentFilter
	Total      int
	Pages      int
	Page       int
	PerPage    int
}

// HasPrev and HasNext drive the pager links.
func (d EquipmentPageData) HasPrev() bool { return d.Page > 1 }
func (d EquipmentPageData) HasNext() bool { return d.Page < d.Pages }

type EquipmentDetailPageData struct {
	Card           EquipmentCard
	Description    template.HTML
	Specifications template.HTML
	Requirements   template.HTML
	Availability   domain.Availability
	FavoritesCount int
}

type FavoritesPageData struct {
	Cards []EquipmentCard
	// Loaded is false when the listing could not be fetched, so the page can
	// tell "no favorites" apart from "try again later".
	Loaded bool
}

type BookingsPageData struct {
	Bookings  []domain.Booking
	Equipment []domain.Equipment
	Form      api.CreateBookingRequest
}

type ReportsPageData struct {
	Reports []domain.Report
}

type AdminPageData struct {
	Stats   domain.Stats
	Reports []domain.Report
}
