package mq

// Queue names and message definitions

// booking event queues; consumers (notification jobs, analytics) attach out
// of process, the API only produces
const (
	BookingCreatedQueue = "booking.events.created"
	ShowingsPurgedQueue = "booking.events.purged"
)

type BookingCreatedMessage struct {
	BookingID uint `json:"booking_id"`
	ShowingID uint `json:"showing_id"`
	UserID    uint `json:"user_id"`
	Seats     int  `json:"seats"`
}

type ShowingsPurgedMessage struct {
	ShowingsRemoved int64 `json:"showings_removed"`
	BookingsRemoved int64 `json:"bookings_removed"`
}
