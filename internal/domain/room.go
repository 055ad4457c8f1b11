package domain

// Room is immutable reference data seeded out of band.
type Room struct {
	ID            int64  `json:"Id"`
	RoomNumber    string `json:"RoomNumber"`
	Type          string `json:"Type"`
	Capacity      int    `json:"Capacity"`
	PricePerNight Money  `json:"PricePerNight"`
}

// OccupiedRange is a half-open stay [CheckInDate, CheckOutDate) shown on the room listing.
type OccupiedRange struct {
	CheckInDate  Date `json:"CheckInDate"`
	CheckOutDate Date `json:"CheckOutDate"`
}

// RoomAvailability is the read projection returned by GET /rooms.
type RoomAvailability struct {
	Room
	OccupiedDates []OccupiedRange `json:"OccupiedDates"`
}
