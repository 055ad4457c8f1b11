package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// MemoryStore keeps rooms and reservations in process. Insert applies the same
// overlap rule as the database constraint.
type MemoryStore struct {
	mu           sync.RWMutex
	rooms        map[int64]domain.Room
	reservations []domain.Reservation
}

func NewMemoryStore(rooms ...domain.Room) *MemoryStore {
	s := &MemoryStore{rooms: make(map[int64]domain.Room, len(rooms))}
	for _, room := range rooms {
		s.rooms[room.ID] = room
	}
	return s
}

func (s *MemoryStore) AllRooms(ctx context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (s *MemoryStore) FindRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (s *MemoryStore) FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) ([]domain.Reservation, error) {
	return s.filter(func(r domain.Reservation) bool {
		return r.RoomID == roomID && r.Overlaps(checkIn, checkOut)
	}), nil
}

func (s *MemoryStore) FindByRoom(ctx context.Context, roomID int64, from domain.Date) ([]domain.Reservation, error) {
	return s.filter(func(r domain.Reservation) bool {
		return r.RoomID == roomID && !r.CheckOutDate.Before(from)
	}), nil
}

func (s *MemoryStore) FindCheckingInBetween(ctx context.Context, start, end domain.Date) ([]domain.Reservation, error) {
	return s.filter(func(r domain.Reservation) bool {
		return !r.CheckInDate.Before(start) && r.CheckInDate.Before(end)
	}), nil
}

func (s *MemoryStore) FindByGuestEmail(ctx context.Context, email string) ([]domain.GuestReservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GuestReservation, 0)
	for _, r := range s.reservations {
		if r.GuestEmail != email {
			continue
		}
		g := domain.GuestReservation{
			ID:           r.ID,
			CheckInDate:  r.CheckInDate,
			CheckOutDate: r.CheckOutDate,
			TotalPrice:   r.TotalPrice,
		}
		if room, ok := s.rooms[r.RoomID]; ok {
			g.RoomNumber = room.RoomNumber
			g.RoomType = room.Type
		}
		result = append(result, g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckInDate.After(result[j].CheckInDate)
	})
	return result, nil
}

func (s *MemoryStore) Insert(ctx context.Context, reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[reservation.RoomID]; !ok {
		return ErrRoomMissing
	}
	for _, r := range s.reservations {
		if r.RoomID == reservation.RoomID && r.Overlaps(reservation.CheckInDate, reservation.CheckOutDate) {
			return ErrOverlap
		}
	}
	s.reservations = append(s.reservations, *reservation)
	return nil
}

func (s *MemoryStore) filter(keep func(domain.Reservation) bool) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if keep(r) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckInDate.Before(result[j].CheckInDate)
	})
	return result
}

var (
	_ RoomRepository        = (*MemoryStore)(nil)
	_ ReservationRepository = (*MemoryStore)(nil)
)
