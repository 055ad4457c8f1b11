package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
)

const TypeConfirmation = "Confirmation"

// Confirmation is the queue message handed off after a reservation is stored.
type Confirmation struct {
	ID         uuid.UUID `json:"Id"`
	GuestEmail string    `json:"GuestEmail"`
	Type       string    `json:"Type,omitempty"`
}

func NewConfirmation(id uuid.UUID, guestEmail string) Confirmation {
	return Confirmation{ID: id, GuestEmail: guestEmail, Type: TypeConfirmation}
}

// Decode parses a queue message. A missing Type means Confirmation.
func Decode(body []byte) (Confirmation, error) {
	var msg Confirmation
	if err := json.Unmarshal(body, &msg); err != nil {
		return Confirmation{}, fmt.Errorf("decode confirmation: %w", err)
	}
	if msg.Type == "" {
		msg.Type = TypeConfirmation
	}
	if msg.ID == uuid.Nil || msg.GuestEmail == "" {
		return Confirmation{}, fmt.Errorf("decode confirmation: Id and GuestEmail are required")
	}
	return msg, nil
}

type Sender interface {
	SendConfirmation(ctx context.Context, msg Confirmation) error
}

// Processor is the queue consumer side of the relay.
type Processor struct {
	sender Sender
}

func NewProcessor(sender Sender) *Processor {
	return &Processor{sender: sender}
}

// Handle processes one queue message. Malformed and unknown messages are
// logged and dropped so they are not redelivered forever; a sender error is
// returned so the transport can redeliver.
func (p *Processor) Handle(ctx context.Context, body []byte) error {
	log.Printf("processing reservation message: %s", string(body))

	msg, err := Decode(body)
	if err != nil {
		log.Printf("drop message: %v", err)
		return nil
	}
	if msg.Type != TypeConfirmation {
		log.Printf("drop message %s: unsupported type %q", msg.ID, msg.Type)
		return nil
	}

	if err := p.sender.SendConfirmation(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", msg.ID, err)
	}
	return nil
}
