package apiclient

import (
	"net/http"

	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
)

// === Booking Methods ===

func (c *APIClient) GetUserBookings(r *http.Request) []domain.Booking {
	var bookings []domain.Booking
	if !c.read(r, "GetUserBookings", "/bookings", &bookings) || bookings == nil {
		return []domain.Booking{}
	}
	return bookings
}

// CreateBooking passes data through to the backend. The error, if any, is a
// *errors.Failure with the backend's message or "booking failed".
func (c *APIClient) CreateBooking(r *http.Request, data api.CreateBookingRequest) (api.Payload, error) {
	var created api.Payload
	if err := c.call(r, "CreateBooking", http.MethodPost, "/bookings", data, &created, "booking failed"); err != nil {
		return nil, err
	}
	return created, nil
}
