package admission

import "errors"

// Rejections are deterministic for a given input and store state; only
// ErrStoreUnavailable is transient.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrPastDate         = errors.New("past date rejected")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomOccupied     = errors.New("room occupied")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Reason returns the taxonomy name of err, or "" for nil.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrInvalidDateRange):
		return "InvalidDateRange"
	case errors.Is(err, ErrPastDate):
		return "PastDateRejected"
	case errors.Is(err, ErrRoomNotFound):
		return "RoomNotFound"
	case errors.Is(err, ErrRoomOccupied):
		return "RoomOccupied"
	default:
		return "StoreUnavailable"
	}
}

// IsRejection reports whether err is a business-rule rejection rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrRoomOccupied)
}
