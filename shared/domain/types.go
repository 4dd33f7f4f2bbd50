package domain

type (
	UserId      = int64
	EquipmentId = int64
	CategoryId  = int64
	BookingId   = int64

	EquipmentStatus = string
	BookingStatus   = string
)

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCanceled  BookingStatus = "cancelled"
)
