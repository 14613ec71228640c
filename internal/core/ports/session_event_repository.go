package ports

import (
	"context"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

// SessionEventRepository persists the session audit trail.
type SessionEventRepository interface {
	Insert(ctx context.Context, event domain.SessionEvent) error
}
