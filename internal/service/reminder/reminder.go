package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type Notifier interface {
	SendReminder(ctx context.Context, r domain.Reservation) error
}

// Sweeper finds next-day check-ins and sends one reminder each. It keeps no
// state: the window is derived from the clock on every run, so running twice on
// the same day sends the reminders twice.
type Sweeper struct {
	reservations repository.ReservationRepository
	notifier     Notifier
	now          func() time.Time
}

func NewSweeper(reservations repository.ReservationRepository, notifier Notifier) *Sweeper {
	return &Sweeper{reservations: reservations, notifier: notifier, now: time.Now}
}

type Result struct {
	Window   [2]domain.Date
	Found    int
	Notified int
}

// Window returns [tomorrow, tomorrow+1) for now, in UTC days.
func Window(now time.Time) (domain.Date, domain.Date) {
	tomorrow := domain.NewDate(now).AddDays(1)
	return tomorrow, tomorrow.AddDays(1)
}

func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	return s.RunAt(ctx, s.now())
}

// RunAt sweeps relative to now. A failed reminder is logged and skipped.
func (s *Sweeper) RunAt(ctx context.Context, now time.Time) (Result, error) {
	start, end := Window(now)
	result := Result{Window: [2]domain.Date{start, end}}

	upcoming, err := s.reservations.FindCheckingInBetween(ctx, start, end)
	if err != nil {
		return result, fmt.Errorf("find check-ins for %s: %w", start, err)
	}
	result.Found = len(upcoming)
	log.Printf("[ALERT] found %d reservations checking in on %s", result.Found, start)

	for _, r := range upcoming {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.notifier.SendReminder(ctx, r); err != nil {
			log.Printf("WARNING: reminder for reservation %s to %s failed: %v", r.ID, r.GuestEmail, err)
			continue
		}
		result.Notified++
	}
	return result, nil
}
