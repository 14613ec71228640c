package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

const (
	storageCollection = "console_storage"
	defaultStorageTTL = 7 * 24 * time.Hour
)

// CredentialStore implements ports.CredentialStore on the console_storage
// collection, one document per browsing context keyed by its id.
type CredentialStore struct {
	coll   *mongo.Collection
	sealer ports.TokenSealer
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

type storageDoc struct {
	ContextID string               `bson:"_id"`
	Token     string               `bson:"authToken"`
	User      *domain.UserIdentity `bson:"authUser,omitempty"`
	UpdatedAt time.Time            `bson:"updated_at"`
	ExpiresAt time.Time            `bson:"expires_at"`
}

func NewCredentialStore(db *mongo.Database, sealer ports.TokenSealer, ttl time.Duration) *CredentialStore {
	if ttl <= 0 {
		ttl = defaultStorageTTL
	}
	return &CredentialStore{
		coll:   db.Collection(storageCollection),
		sealer: sealer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// EnsureIndexes creates the TTL index that expires stale credentials.
func (s *CredentialStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("ensure storage indexes: %w", err)
	}
	return nil
}

func (s *CredentialStore) Load(ctx context.Context, contextID string) (*domain.PersistedCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc storageDoc
	filter := bson.M{"_id": contextID, "expires_at": bson.M{"$gt": s.now().UTC()}}
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("load credential: %w", err)
	}
	return s.fromDoc(doc)
}

func (s *CredentialStore) Save(ctx context.Context, contextID string, cred domain.PersistedCredential) error {
	doc, err := s.toDoc(contextID, cred)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": contextID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *CredentialStore) Clear(ctx context.Context, contextID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": contextID}); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (s *CredentialStore) toDoc(contextID string, cred domain.PersistedCredential) (storageDoc, error) {
	sealed, err := s.sealer.Seal(cred.Token, contextID)
	if err != nil {
		return storageDoc{}, fmt.Errorf("save credential: %w", err)
	}
	now := s.now().UTC()
	return storageDoc{
		ContextID: contextID,
		Token:     sealed,
		User:      cred.User,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}, nil
}

func (s *CredentialStore) fromDoc(doc storageDoc) (*domain.PersistedCredential, error) {
	if doc.Token == "" {
		return nil, domain.ErrCredentialNotFound
	}
	token, err := s.sealer.Open(doc.Token, doc.ContextID)
	if err != nil {
		return nil, fmt.Errorf("load credential: %w: %w", domain.ErrCredentialUnreadable, err)
	}
	return &domain.PersistedCredential{Token: token, User: doc.User}, nil
}
