package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/crypto"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	sealer, err := crypto.NewSealer("test-secret")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	fixed := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	return &CredentialStore{sealer: sealer, ttl: time.Hour, now: func() time.Time { return fixed }}
}

func TestCredentialStore_DocRoundTrip(t *testing.T) {
	s := newTestStore(t)
	user := &domain.UserIdentity{UserID: 3, Username: "frontdesk", UserType: "FRONT_DESK"}

	doc, err := s.toDoc("ctx-1", domain.PersistedCredential{Token: "abc", User: user})
	if err != nil {
		t.Fatalf("toDoc: %v", err)
	}
	if doc.Token == "abc" {
		t.Fatalf("token must be sealed at rest")
	}
	if !doc.ExpiresAt.Equal(doc.UpdatedAt.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v", doc.ExpiresAt)
	}

	// Through BSON, the way the driver stores it.
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded storageDoc
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cred, err := s.fromDoc(decoded)
	if err != nil {
		t.Fatalf("fromDoc: %v", err)
	}
	if cred.Token != "abc" || cred.User == nil || cred.User.UserID != 3 {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestCredentialStore_FromDocEmptyToken(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.fromDoc(storageDoc{ContextID: "ctx-1"}); !errors.Is(err, domain.ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

func TestCredentialStore_FromDocBoundToContext(t *testing.T) {
	s := newTestStore(t)
	doc, _ := s.toDoc("ctx-1", domain.PersistedCredential{Token: "abc"})
	doc.ContextID = "ctx-2"

	if _, err := s.fromDoc(doc); !errors.Is(err, domain.ErrCredentialUnreadable) {
		t.Fatalf("expected a token sealed for another context to be unreadable, got %v", err)
	}
}
