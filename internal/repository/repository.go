package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

var (
	// ErrOverlap is returned by Insert when the stay collides with a committed one.
	ErrOverlap = errors.New("reservation overlaps an existing stay")
	// ErrRoomMissing is returned by Insert when the referenced room does not exist.
	ErrRoomMissing = errors.New("referenced room does not exist")
)

type RoomRepository interface {
	AllRooms(ctx context.Context) ([]domain.Room, error)
	FindRoomByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ReservationRepository interface {
	FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) ([]domain.Reservation, error)
	// FindByRoom returns stays on the room whose check-out is on or after from, by check-in.
	FindByRoom(ctx context.Context, roomID int64, from domain.Date) ([]domain.Reservation, error)
	FindByGuestEmail(ctx context.Context, email string) ([]domain.GuestReservation, error)
	// FindCheckingInBetween returns stays with start <= check-in < end.
	FindCheckingInBetween(ctx context.Context, start, end domain.Date) ([]domain.Reservation, error)
	Insert(ctx context.Context, reservation *domain.Reservation) error
}

// DefaultRooms is the catalog seeded by migrations and used by the in-memory store.
func DefaultRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, RoomNumber: "101", Type: "Single", Capacity: 1, PricePerNight: 10000},
		{ID: 2, RoomNumber: "102", Type: "Double", Capacity: 2, PricePerNight: 15000},
		{ID: 3, RoomNumber: "201", Type: "Deluxe", Capacity: 2, PricePerNight: 25000},
		{ID: 4, RoomNumber: "301", Type: "Suite", Capacity: 4, PricePerNight: 40000},
	}
}
