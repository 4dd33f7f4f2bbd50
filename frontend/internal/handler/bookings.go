package handler

import (
	"net/http"
	"strconv"
	"strings"

	frontend_domain "github.com/equipbook/equipbook/frontend/internal/domain"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
)

func (h *Handler) BookingsGetHandler(w http.ResponseWriter, r *http.Request) {
	preselected, _ := strconv.ParseInt(r.FormValue("equipment_id"), 10, 64)
	data := frontend_domain.BookingsPageData{
		Bookings:  h.APIClient.GetUserBookings(r),
		Equipment: h.APIClient.GetAllEquipment(r, 0, 0).Items,
		Form:      api.CreateBookingRequest{EquipmentId: preselected},
	}
	h.renderTemplate(w, r, "bookings.html", "bookings", data)
}

// BookingsPostHandler passes the form to the backend as is; the backend
// owns every booking rule and its message is shown on failure.
func (h *Handler) BookingsPostHandler(w http.ResponseWriter, r *http.Request) {
	equipmentID, _ := strconv.ParseInt(r.FormValue("equipment_id"), 10, 64)
	req := api.CreateBookingRequest{
		EquipmentId: equipmentID,
		StartDate:   strings.TrimSpace(r.FormValue("start_date")),
		EndDate:     strings.TrimSpace(r.FormValue("end_date")),
		Purpose:     strings.TrimSpace(r.FormValue("purpose")),
	}

	if _, err := h.APIClient.CreateBooking(r, req); err != nil {
		h.Notifier.Show(w, r, h.TextProcessor.Plain(err.Error()), notify.Error)
	} else {
		h.Notifier.Show(w, r, "Booking request sent", notify.Success)
	}
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}
