package domain

type Booking struct {
	Id            BookingId     `json:"id"`
	EquipmentId   EquipmentId   `json:"equipment_id"`
	EquipmentName string        `json:"equipment_name,omitempty"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Purpose       string        `json:"purpose,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     string        `json:"created_at,omitempty"`
}
