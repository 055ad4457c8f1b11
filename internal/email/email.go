package email

import (
	"context"
	"log"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/notification"
)

// Sender simulates outgoing mail by writing log lines.
type Sender struct {
	logger *log.Logger
}

func NewSender() *Sender {
	return &Sender{logger: log.Default()}
}

func NewSenderWithLogger(logger *log.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) SendConfirmation(ctx context.Context, msg notification.Confirmation) error {
	s.logger.Printf("[EMAIL] confirmation sent to %s for reservation %s (simulated)", msg.GuestEmail, msg.ID)
	return nil
}

func (s *Sender) SendReminder(ctx context.Context, r domain.Reservation) error {
	s.logger.Printf("[EMAIL] reminder sent to %s: check-in %s, room id %d (simulated)", r.GuestEmail, r.CheckInDate, r.RoomID)
	return nil
}
