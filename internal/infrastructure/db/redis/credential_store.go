package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

const (
	storagePrefix     = "console:storage:"
	defaultStorageTTL = 7 * 24 * time.Hour
)

// CredentialStore keeps each browsing context's persisted credential in a
// hash at console:storage:<context id> with the fields authToken and
// authUser. The token field holds the sealed token; the TTL is refreshed on
// every save.
type CredentialStore struct {
	client *redis.Client
	sealer ports.TokenSealer
	ttl    time.Duration
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

func NewCredentialStore(client *redis.Client, sealer ports.TokenSealer, ttl time.Duration) *CredentialStore {
	if ttl <= 0 {
		ttl = defaultStorageTTL
	}
	return &CredentialStore{client: client, sealer: sealer, ttl: ttl}
}

func (s *CredentialStore) Load(ctx context.Context, contextID string) (*domain.PersistedCredential, error) {
	values, err := s.client.HGetAll(ctx, storageKey(contextID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}
	sealed := values[domain.StorageKeyToken]
	if sealed == "" {
		return nil, domain.ErrCredentialNotFound
	}

	token, err := s.sealer.Open(sealed, contextID)
	if err != nil {
		return nil, fmt.Errorf("load credential: %w: %w", domain.ErrCredentialUnreadable, err)
	}

	cred := &domain.PersistedCredential{Token: token}
	if raw := values[domain.StorageKeyUser]; raw != "" {
		var user domain.UserIdentity
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			cred.User = &user
		}
	}
	return cred, nil
}

func (s *CredentialStore) Save(ctx context.Context, contextID string, cred domain.PersistedCredential) error {
	sealed, err := s.sealer.Seal(cred.Token, contextID)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	fields := map[string]interface{}{domain.StorageKeyToken: sealed}
	if cred.User != nil {
		raw, err := json.Marshal(cred.User)
		if err != nil {
			return fmt.Errorf("save credential: encode user: %w", err)
		}
		fields[domain.StorageKeyUser] = string(raw)
	}

	key := storageKey(contextID)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// Clear removes both fields. Clearing an empty context is not an error.
func (s *CredentialStore) Clear(ctx context.Context, contextID string) error {
	if err := s.client.HDel(ctx, storageKey(contextID), domain.StorageKeyToken, domain.StorageKeyUser).Err(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func storageKey(contextID string) string {
	return storagePrefix + contextID
}
