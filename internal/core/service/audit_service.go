package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

// AuditService persists session events delivered by the audit dispatcher.
type AuditService struct {
	repo ports.SessionEventRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAuditService returns the service that persists session events.
func NewAuditService(repo ports.SessionEventRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log, now: time.Now}
}

// Process validates and stores a single session event.
func (s *AuditService) Process(ctx context.Context, event domain.SessionEvent) error {
	if event.ContextID == "" {
		return fmt.Errorf("process session event: missing context id")
	}
	if !event.Kind.Valid() {
		return fmt.Errorf("process session event: unknown kind %q", event.Kind)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process session event: insert: %w", err)
	}

	s.log.Debug().
		Str("context_id", event.ContextID).
		Str("kind", string(event.Kind)).
		Str("username", event.Username).
		Msg("session event recorded")
	return nil
}
