package ports

import (
	"context"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

// AuthAPI is the slice of the backend auth group the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	CurrentUser(ctx context.Context, token string) (*domain.UserIdentity, error)
}

// SessionService is the per-browsing-context authentication lifecycle.
type SessionService interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context)
	State() domain.Session
	Token(ctx context.Context) string
}

// SessionAuditor receives session transitions for the audit trail.
type SessionAuditor interface {
	Enqueue(event domain.SessionEvent)
}
