package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

func TestSessionRegistry_GetInitializesOnce(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{Username: "admin", UserType: "ADMIN"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-a"] = domain.PersistedCredential{Token: "abc"}

	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, auth, store, nil, zerolog.Nop())
	}, zerolog.Nop())

	first := reg.Get(context.Background(), "ctx-a")
	second := reg.Get(context.Background(), "ctx-a")

	if first != second {
		t.Fatalf("expected the same manager for the same context")
	}
	if !first.State().IsAuthenticated {
		t.Fatalf("expected restored session, got %+v", first.State())
	}
	if _, current := auth.calls(); current != 1 {
		t.Fatalf("expected one revalidation, got %d", current)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", reg.Len())
	}
}

func TestSessionRegistry_ContextsAreIndependent(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{Username: "admin"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-a"] = domain.PersistedCredential{Token: "abc"}

	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, auth, store, nil, zerolog.Nop())
	}, zerolog.Nop())

	if !reg.Get(context.Background(), "ctx-a").State().IsAuthenticated {
		t.Fatalf("ctx-a should be authenticated")
	}
	if reg.Get(context.Background(), "ctx-b").State().IsAuthenticated {
		t.Fatalf("ctx-b should be anonymous")
	}
}

func TestSessionRegistry_ConcurrentRequestSeesLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		close(started)
		<-release
		return &domain.UserIdentity{Username: "admin"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-a"] = domain.PersistedCredential{Token: "abc"}

	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, auth, store, nil, zerolog.Nop())
	}, zerolog.Nop())

	done := make(chan *SessionManager)
	go func() { done <- reg.Get(context.Background(), "ctx-a") }()

	<-started
	racing := reg.Get(context.Background(), "ctx-a")
	if !racing.State().IsLoading {
		t.Fatalf("expected loading state during initialization, got %+v", racing.State())
	}

	close(release)
	first := <-done
	if first != racing {
		t.Fatalf("expected a single manager")
	}
	if s := first.State(); s.IsLoading || !s.IsAuthenticated {
		t.Fatalf("unexpected settled state: %+v", s)
	}
}

func TestSessionRegistry_InitializationIgnoresRequestCancellation(t *testing.T) {
	auth := &stubAuthAPI{}
	var seen context.Context
	auth.currentUserFn = func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{Username: "admin"}, nil
	}
	store := newMemoryStore()
	store.creds["ctx-a"] = domain.PersistedCredential{Token: "abc"}

	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, ctxRecordingAuth{stubAuthAPI: auth, seen: &seen}, store, nil, zerolog.Nop())
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := reg.Get(ctx, "ctx-a")

	if seen == nil || seen.Err() != nil {
		t.Fatalf("expected initialization context to be detached from cancellation")
	}
	if !m.State().IsAuthenticated {
		t.Fatalf("expected restored session")
	}
}

type ctxRecordingAuth struct {
	*stubAuthAPI
	seen *context.Context
}

func (a ctxRecordingAuth) CurrentUser(ctx context.Context, token string) (*domain.UserIdentity, error) {
	*a.seen = ctx
	return a.stubAuthAPI.CurrentUser(ctx, token)
}

func TestSessionRegistry_SweepEvictsIdleSessions(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{Username: "admin"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-a"] = domain.PersistedCredential{Token: "abc"}

	var authenticated int
	gauge := func(prev, next domain.Session) {
		switch {
		case !prev.IsAuthenticated && next.IsAuthenticated:
			authenticated++
		case prev.IsAuthenticated && !next.IsAuthenticated:
			authenticated--
		}
	}

	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, auth, store, nil, zerolog.Nop())
	}, zerolog.Nop(), gauge)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	reg.Get(context.Background(), "ctx-a")
	reg.Get(context.Background(), "ctx-b")
	if authenticated != 1 {
		t.Fatalf("expected 1 authenticated session, got %d", authenticated)
	}

	now = now.Add(20 * time.Minute)
	reg.Get(context.Background(), "ctx-b")

	now = now.Add(15 * time.Minute)
	if n := reg.Sweep(30 * time.Minute); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected ctx-b to remain, got %d sessions", reg.Len())
	}
	if authenticated != 0 {
		t.Fatalf("expected gauge to drop on eviction, got %d", authenticated)
	}
	if _, ok := store.get("ctx-a"); !ok {
		t.Fatalf("sweep must not touch persisted credentials")
	}

	// The evicted context revalidates on its next request.
	if !reg.Get(context.Background(), "ctx-a").State().IsAuthenticated {
		t.Fatalf("expected re-initialized session")
	}
	if _, current := auth.calls(); current != 2 {
		t.Fatalf("expected a second revalidation, got %d", current)
	}
}

func TestSessionRegistry_Close(t *testing.T) {
	reg := NewSessionRegistry(func(id string) *SessionManager {
		return NewSessionManager(id, &stubAuthAPI{}, newMemoryStore(), nil, zerolog.Nop())
	}, zerolog.Nop())

	reg.Get(context.Background(), "ctx-a")
	reg.Get(context.Background(), "ctx-b")
	reg.Close()

	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Len())
	}
}
