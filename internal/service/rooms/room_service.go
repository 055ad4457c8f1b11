package rooms

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/admission"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type RoomUseCase interface {
	ListRooms(ctx context.Context) ([]domain.RoomAvailability, error)
}

type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
}

type RoomService struct {
	rooms        repository.RoomRepository
	reservations repository.ReservationRepository
	cache        Cache
	now          func() time.Time
}

// NewRoomService accepts a nil cache.
func NewRoomService(rooms repository.RoomRepository, reservations repository.ReservationRepository, cache Cache) *RoomService {
	return &RoomService{rooms: rooms, reservations: reservations, cache: cache, now: time.Now}
}

// ListRooms returns every room with its current and future stays, by check-in.
func (s *RoomService) ListRooms(ctx context.Context) ([]domain.RoomAvailability, error) {
	rooms, err := s.catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list rooms: %w", admission.ErrStoreUnavailable, err)
	}

	today := domain.NewDate(s.now())
	result := make([]domain.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		stays, err := s.reservations.FindByRoom(ctx, room.ID, today)
		if err != nil {
			return nil, fmt.Errorf("%w: reservations of room %d: %w", admission.ErrStoreUnavailable, room.ID, err)
		}
		occupied := make([]domain.OccupiedRange, 0, len(stays))
		for _, r := range stays {
			occupied = append(occupied, domain.OccupiedRange{CheckInDate: r.CheckInDate, CheckOutDate: r.CheckOutDate})
		}
		result = append(result, domain.RoomAvailability{Room: room, OccupiedDates: occupied})
	}
	return result, nil
}

func (s *RoomService) catalog(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRooms(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			log.Printf("WARNING: rooms cache read failed: %v", err)
		}
	}

	rooms, err := s.rooms.AllRooms(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			log.Printf("WARNING: rooms cache write failed: %v", err)
		}
	}
	return rooms, nil
}

var _ RoomUseCase = (*RoomService)(nil)
