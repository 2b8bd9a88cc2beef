// Package gateway is the messaging boundary: it accepts a sender name
// and a message body and performs best-effort delivery. Consumed by the
// contact form over HTTP; never by the theme or boot machinery.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Validation and configuration failures, each surfaced to the caller as
// a distinct reason.
var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyMessage  = errors.New("message is required")
	ErrNotConfigured = errors.New("message delivery is not configured")
)

const (
	maxNameBytes    = 200
	maxMessageBytes = 5000
)

// Message is one accepted contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Deliverer performs the actual best-effort delivery.
type Deliverer interface {
	Deliver(ctx context.Context, msg Message) error
}

// Archive records accepted messages. Archival is best-effort: failures
// are logged and never surfaced to the sender.
type Archive interface {
	Record(ctx context.Context, msg Message, delivered bool) error
}

// Service validates, delivers, and archives messages.
type Service struct {
	deliverer Deliverer
	archive   Archive
	logger    *log.Logger
	now       func() time.Time
}

// NewService builds a Service. A nil deliverer means delivery is not
// configured; Send then fails with ErrNotConfigured. A nil archive
// disables archival.
func NewService(deliverer Deliverer, archive Archive, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		deliverer: deliverer,
		archive:   archive,
		logger:    logger,
		now:       time.Now,
	}
}

// Send validates the submission and hands it to the deliverer. Inputs
// are re-validated here even though callers guard them first.
func (s *Service) Send(ctx context.Context, name, body string) error {
	name = strings.TrimSpace(name)
	body = strings.TrimSpace(body)

	switch {
	case name == "" || len(name) > maxNameBytes:
		return ErrEmptyName
	case body == "" || len(body) > maxMessageBytes:
		return ErrEmptyMessage
	}

	if s.deliverer == nil {
		return ErrNotConfigured
	}

	msg := Message{
		ID:        uuid.NewString(),
		Name:      name,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}

	deliverErr := s.deliverer.Deliver(ctx, msg)

	if s.archive != nil {
		if err := s.archive.Record(ctx, msg, deliverErr == nil); err != nil {
			s.logger.Warn("message archive failed", "event", "message_archive_failed", "message_id", msg.ID, "err", err)
		}
	}

	if deliverErr != nil {
		return fmt.Errorf("delivering message: %w", deliverErr)
	}

	s.logger.Info("message delivered", "event", "message_delivered", "message_id", msg.ID)
	return nil
}
