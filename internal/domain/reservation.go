package domain

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID           uuid.UUID
	RoomID       int64
	GuestName    string
	GuestEmail   string
	CheckInDate  Date
	CheckOutDate Date
	TotalPrice   Money
	CreatedAt    time.Time
}

// Overlaps reports whether the stay intersects [checkIn, checkOut).
// A checkout on day X does not conflict with a check-in on day X.
func (r Reservation) Overlaps(checkIn, checkOut Date) bool {
	return checkIn.Before(r.CheckOutDate) && r.CheckInDate.Before(checkOut)
}

// GuestReservation is a reservation with its room joined in, without back-references.
type GuestReservation struct {
	ID           uuid.UUID `json:"Id"`
	CheckInDate  Date      `json:"CheckInDate"`
	CheckOutDate Date      `json:"CheckOutDate"`
	TotalPrice   Money     `json:"TotalPrice"`
	RoomNumber   string    `json:"RoomNumber"`
	RoomType     string    `json:"RoomType"`
}
