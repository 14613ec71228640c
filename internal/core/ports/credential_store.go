package ports

import (
	"context"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

// CredentialStore is the durable per-browsing-context storage holding the
// bearer token and the denormalized identity. Load returns
// domain.ErrCredentialNotFound when nothing is stored and wraps
// domain.ErrCredentialUnreadable when the stored token cannot be opened.
type CredentialStore interface {
	Load(ctx context.Context, contextID string) (*domain.PersistedCredential, error)
	Save(ctx context.Context, contextID string, cred domain.PersistedCredential) error
	Clear(ctx context.Context, contextID string) error
}

// TokenSealer protects the bearer token at rest. aad is the browsing
// context id, so a sealed token only opens for the context that stored it.
type TokenSealer interface {
	Seal(plaintext, aad string) (string, error)
	Open(sealed, aad string) (string, error)
}
