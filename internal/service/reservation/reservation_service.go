package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/admission"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/notification"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

const defaultPublishTimeout = 5 * time.Second

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	GuestReservations(ctx context.Context, email string) ([]domain.GuestReservation, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateReservationInput struct {
	RoomID       int64
	GuestName    string
	GuestEmail   string
	CheckInDate  domain.Date
	CheckOutDate domain.Date
}

type ReservationService struct {
	engine         *admission.Engine
	reservations   repository.ReservationRepository
	producer       Producer
	topic          string
	publishTimeout time.Duration
	locks          *roomLocks
	now            func() time.Time
	engineOpts     []admission.EngineOption
}

type ReservationServiceOption func(*ReservationService)

// WithProducer enables the confirmation hand-off to topic.
func WithProducer(producer Producer, topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithClock(now func() time.Time) ReservationServiceOption {
	return func(s *ReservationService) {
		s.now = now
	}
}

func WithEngineOptions(opts ...admission.EngineOption) ReservationServiceOption {
	return func(s *ReservationService) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// store joins the two repositories into the reader admission needs.
type store struct {
	repository.RoomRepository
	repository.ReservationRepository
}

func NewReservationService(
	rooms repository.RoomRepository,
	reservations repository.ReservationRepository,
	opts ...ReservationServiceOption,
) *ReservationService {
	s := &ReservationService{
		reservations:   reservations,
		publishTimeout: defaultPublishTimeout,
		locks:          newRoomLocks(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = admission.NewEngine(store{rooms, reservations}, s.engineOpts...)
	return s
}

// CreateReservation admits, stores and hands off a confirmation. Admission and
// insert for the same room never interleave inside this process; the store
// rejects conflicts from other processes at insert time. Either way the caller
// sees admission.ErrRoomOccupied.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	req := admission.Request{
		RoomID:       input.RoomID,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
	}
	now := s.now()

	// Дешёвые проверки до блокировки комнаты
	if err := admission.Validate(req, now); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(req.RoomID)
	defer unlock()

	res, err := s.engine.Admit(ctx, req, now)
	if err != nil {
		if errors.Is(err, admission.ErrStoreUnavailable) {
			log.Printf("ERROR: admission for room %d failed: %v", req.RoomID, err)
		}
		return nil, err
	}

	if err := s.reservations.Insert(ctx, res); err != nil {
		switch {
		case errors.Is(err, repository.ErrOverlap):
			return nil, fmt.Errorf("%w: room %d was booked concurrently for %s - %s", admission.ErrRoomOccupied, res.RoomID, res.CheckInDate, res.CheckOutDate)
		case errors.Is(err, repository.ErrRoomMissing):
			return nil, fmt.Errorf("%w: room %d does not exist", admission.ErrRoomNotFound, res.RoomID)
		default:
			log.Printf("ERROR: failed to save reservation %s: %v", res.ID, err)
			return nil, fmt.Errorf("%w: save reservation: %w", admission.ErrStoreUnavailable, err)
		}
	}
	log.Printf("reservation %s saved: room %d, %s - %s, total %s", res.ID, res.RoomID, res.CheckInDate, res.CheckOutDate, res.TotalPrice)

	s.publishConfirmation(ctx, res)
	return res, nil
}

func (s *ReservationService) GuestReservations(ctx context.Context, email string) ([]domain.GuestReservation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: guest email is required", admission.ErrInvalidInput)
	}
	list, err := s.reservations.FindByGuestEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: failed to load reservations for %s: %v", email, err)
		return nil, fmt.Errorf("%w: find reservations: %w", admission.ErrStoreUnavailable, err)
	}
	return list, nil
}

// publishConfirmation never fails the request: the reservation is already committed.
func (s *ReservationService) publishConfirmation(ctx context.Context, res *domain.Reservation) {
	if s.producer == nil || s.topic == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	msg := notification.NewConfirmation(res.ID, res.GuestEmail)
	if err := s.producer.Publish(ctx, s.topic, res.ID.String(), msg); err != nil {
		log.Printf("WARNING: failed to publish confirmation for reservation %s: %v", res.ID, err)
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
