package admission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
)

// Request is an untrusted reservation request. There is intentionally no price field.
type Request struct {
	RoomID       int64
	GuestName    string
	GuestEmail   string
	CheckInDate  domain.Date
	CheckOutDate domain.Date
}

// Reader is the read-only view of the store that admission needs.
type Reader interface {
	// FindRoomByID returns nil, nil when the room does not exist.
	FindRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) ([]domain.Reservation, error)
}

type Engine struct {
	store Reader
	newID func() uuid.UUID
}

type EngineOption func(*Engine)

func WithIDGenerator(gen func() uuid.UUID) EngineOption {
	return func(e *Engine) {
		e.newID = gen
	}
}

func NewEngine(store Reader, opts ...EngineOption) *Engine {
	e := &Engine{store: store, newID: uuid.New}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Admit decides whether req may become a reservation and prices it. It never
// writes; the caller persists the returned reservation.
//
// Checks run in a fixed order and the first failure wins: input, date range,
// past date, room existence, availability.
func (e *Engine) Admit(ctx context.Context, req Request, now time.Time) (*domain.Reservation, error) {
	if err := Validate(req, now); err != nil {
		return nil, err
	}

	room, err := e.store.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: find room %d: %w", ErrStoreUnavailable, req.RoomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d does not exist", ErrRoomNotFound, req.RoomID)
	}

	existing, err := e.store.FindOverlapping(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check availability of room %d: %w", ErrStoreUnavailable, req.RoomID, err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: room %s is already booked between %s and %s", ErrRoomOccupied, room.RoomNumber, req.CheckInDate, req.CheckOutDate)
	}

	return &domain.Reservation{
		ID:           e.newID(),
		RoomID:       room.ID,
		GuestName:    strings.TrimSpace(req.GuestName),
		GuestEmail:   strings.TrimSpace(req.GuestEmail),
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   Price(*room, req.CheckInDate, req.CheckOutDate),
		CreatedAt:    now.UTC(),
	}, nil
}

// Validate runs the checks that need no store access.
func Validate(req Request, now time.Time) error {
	if req.RoomID <= 0 || strings.TrimSpace(req.GuestEmail) == "" {
		return fmt.Errorf("%w: room id and guest email are required", ErrInvalidInput)
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidDateRange)
	}
	if req.CheckInDate.Before(domain.NewDate(now)) {
		return fmt.Errorf("%w: cannot book dates in the past", ErrPastDate)
	}
	return nil
}

// Nights is the whole-day length of the stay, at least one.
func Nights(checkIn, checkOut domain.Date) int {
	n := checkIn.DaysUntil(checkOut)
	if n < 1 {
		return 1
	}
	return n
}

func Price(room domain.Room, checkIn, checkOut domain.Date) domain.Money {
	return room.PricePerNight.Times(Nights(checkIn, checkOut))
}
