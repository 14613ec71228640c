package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

type stubAuthAPI struct {
	mu            sync.Mutex
	loginCalls    int
	currentCalls  int
	lastToken     string
	loginFn       func(req domain.LoginRequest) (*domain.LoginResponse, error)
	currentUserFn func(token string) (*domain.UserIdentity, error)
}

func (s *stubAuthAPI) Login(_ context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	s.mu.Lock()
	s.loginCalls++
	s.mu.Unlock()
	return s.loginFn(req)
}

func (s *stubAuthAPI) CurrentUser(_ context.Context, token string) (*domain.UserIdentity, error) {
	s.mu.Lock()
	s.currentCalls++
	s.lastToken = token
	s.mu.Unlock()
	return s.currentUserFn(token)
}

func (s *stubAuthAPI) calls() (login, current int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls, s.currentCalls
}

type memoryStore struct {
	mu      sync.Mutex
	creds   map[string]domain.PersistedCredential
	loadErr error
	saveErr error
	cleared int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{creds: make(map[string]domain.PersistedCredential)}
}

func (s *memoryStore) Load(_ context.Context, id string) (*domain.PersistedCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	c, ok := s.creds[id]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	return &c, nil
}

func (s *memoryStore) Save(_ context.Context, id string, cred domain.PersistedCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.creds[id] = cred
	return nil
}

func (s *memoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared++
	delete(s.creds, id)
	return nil
}

func (s *memoryStore) get(id string) (domain.PersistedCredential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creds[id]
	return c, ok
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) { n.paths = append(n.paths, path) }

type recordingAuditor struct {
	mu     sync.Mutex
	events []domain.SessionEvent
}

func (a *recordingAuditor) Enqueue(e domain.SessionEvent) {
	a.mu.Lock()
	a.events = append(a.events, e)
	a.mu.Unlock()
}

func (a *recordingAuditor) kinds() []domain.SessionEventKind {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.SessionEventKind, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Kind)
	}
	return out
}

var errInvalidCredentials = errors.New("Invalid credentials")

func adminResponse() *domain.LoginResponse {
	return &domain.LoginResponse{
		Token:     "abc",
		TokenType: "Bearer",
		UserID:    1,
		Username:  "admin",
		Name:      "Ada",
		Surname:   "Admin",
		Email:     "admin@hotel.test",
		UserType:  "ADMIN",
	}
}

func newTestManager(auth *stubAuthAPI, store *memoryStore, auditor ports.SessionAuditor) *SessionManager {
	return NewSessionManager("ctx-1", auth, store, auditor, zerolog.Nop())
}

func TestSessionManager_StartsLoading(t *testing.T) {
	m := newTestManager(&stubAuthAPI{}, newMemoryStore(), nil)
	if s := m.State(); !s.IsLoading || s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatalf("unexpected initial state: %+v", s)
	}
}

func TestSessionManager_InitializeWithoutToken(t *testing.T) {
	auth := &stubAuthAPI{}
	m := newTestManager(auth, newMemoryStore(), nil)

	m.Initialize(context.Background())

	s := m.State()
	if s.IsLoading || s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatalf("expected settled anonymous session, got %+v", s)
	}
	if login, current := auth.calls(); login != 0 || current != 0 {
		t.Fatalf("expected no backend calls, got login=%d current=%d", login, current)
	}
}

func TestSessionManager_InitializeRestoresSession(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{UserID: 1, Username: "admin", UserType: "ADMIN"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-1"] = domain.PersistedCredential{Token: "abc"}
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)

	m.Initialize(context.Background())

	s := m.State()
	if s.IsLoading || !s.IsAuthenticated || s.CurrentUser == nil || s.CurrentUser.Username != "admin" {
		t.Fatalf("unexpected state: %+v", s)
	}
	if auth.lastToken != "abc" {
		t.Fatalf("expected persisted token to be revalidated, got %q", auth.lastToken)
	}
	if kinds := auditor.kinds(); len(kinds) != 1 || kinds[0] != domain.EventRestored {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_InitializeDefaultsUserType(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{UserID: 2, Username: "frontdesk"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-1"] = domain.PersistedCredential{Token: "abc"}
	m := newTestManager(auth, store, nil)

	m.Initialize(context.Background())

	if got := m.State().CurrentUser.UserType; got != domain.UnknownUserType {
		t.Fatalf("expected %s, got %s", domain.UnknownUserType, got)
	}
}

func TestSessionManager_InitializeRejectedTokenIsCleared(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return nil, errors.New("HTTP 401: Unauthorized")
	}}
	store := newMemoryStore()
	store.creds["ctx-1"] = domain.PersistedCredential{Token: "expired", User: &domain.UserIdentity{Username: "admin"}}
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)

	m.Initialize(context.Background())

	s := m.State()
	if s.IsLoading || s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
	if _, ok := store.get("ctx-1"); ok {
		t.Fatalf("expected persisted credential to be cleared")
	}
	if kinds := auditor.kinds(); len(kinds) != 1 || kinds[0] != domain.EventRejected {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_InitializeStoreFailureKeepsCredential(t *testing.T) {
	auth := &stubAuthAPI{}
	store := newMemoryStore()
	store.loadErr = errors.New("redis down")
	m := newTestManager(auth, store, nil)

	m.Initialize(context.Background())

	if s := m.State(); s.IsLoading || s.IsAuthenticated {
		t.Fatalf("unexpected state: %+v", s)
	}
	if store.cleared != 0 {
		t.Fatalf("store must not be cleared on a load failure")
	}
	if _, current := auth.calls(); current != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestSessionManager_InitializeUnreadableTokenIsCleared(t *testing.T) {
	auth := &stubAuthAPI{}
	store := newMemoryStore()
	store.creds["ctx-1"] = domain.PersistedCredential{Token: "sealed-under-old-secret"}
	store.loadErr = fmt.Errorf("load credential: %w: %w", domain.ErrCredentialUnreadable, errors.New("message authentication failed"))
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)

	m.Initialize(context.Background())

	if s := m.State(); s.IsLoading || s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
	if store.cleared != 1 {
		t.Fatalf("expected unreadable credential to be cleared once, got %d", store.cleared)
	}
	if _, current := auth.calls(); current != 0 {
		t.Fatalf("expected no backend call")
	}
	if kinds := auditor.kinds(); len(kinds) != 1 || kinds[0] != domain.EventRejected {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_InitializeRunsOnce(t *testing.T) {
	auth := &stubAuthAPI{currentUserFn: func(string) (*domain.UserIdentity, error) {
		return &domain.UserIdentity{Username: "admin"}, nil
	}}
	store := newMemoryStore()
	store.creds["ctx-1"] = domain.PersistedCredential{Token: "abc"}
	m := newTestManager(auth, store, nil)

	var changes int
	m.Subscribe(func(prev, next domain.Session) {
		if prev.IsLoading && !next.IsLoading {
			changes++
		}
	})

	m.Initialize(context.Background())
	m.Initialize(context.Background())

	if _, current := auth.calls(); current != 1 {
		t.Fatalf("expected one revalidation, got %d", current)
	}
	if changes != 1 {
		t.Fatalf("expected loading to end exactly once, got %d", changes)
	}
}

func TestSessionManager_LoginSuccess(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(req domain.LoginRequest) (*domain.LoginResponse, error) {
		if req.Username != "admin" || req.Password != "admin123" {
			t.Fatalf("unexpected credentials: %+v", req)
		}
		return adminResponse(), nil
	}}
	store := newMemoryStore()
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)
	m.Initialize(context.Background())

	nav := &recordingNavigator{}
	ctx := ports.WithNavigator(context.Background(), nav)
	if err := m.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	s := m.State()
	if !s.IsAuthenticated || s.CurrentUser == nil || s.CurrentUser.Username != "admin" || s.CurrentUser.UserID != 1 {
		t.Fatalf("unexpected state: %+v", s)
	}
	cred, ok := store.get("ctx-1")
	if !ok || cred.Token != "abc" || cred.User == nil || cred.User.Email != "admin@hotel.test" {
		t.Fatalf("unexpected persisted credential: %+v", cred)
	}
	if m.Token(context.Background()) != "abc" {
		t.Fatalf("expected token to be readable")
	}
	if len(nav.paths) != 1 || nav.paths[0] != domain.HomePath {
		t.Fatalf("expected navigation to home, got %v", nav.paths)
	}
	if kinds := auditor.kinds(); len(kinds) != 1 || kinds[0] != domain.EventLoginSucceeded {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_LoginFailureReturnsBackendError(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(domain.LoginRequest) (*domain.LoginResponse, error) {
		return nil, errInvalidCredentials
	}}
	store := newMemoryStore()
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)
	m.Initialize(context.Background())

	nav := &recordingNavigator{}
	err := m.Login(ports.WithNavigator(context.Background(), nav), "admin", "wrong")
	if err != errInvalidCredentials {
		t.Fatalf("expected backend error unchanged, got %v", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if s := m.State(); s.IsAuthenticated || s.CurrentUser != nil {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
	if _, ok := store.get("ctx-1"); ok {
		t.Fatalf("nothing should be persisted")
	}
	if len(nav.paths) != 0 {
		t.Fatalf("expected no navigation, got %v", nav.paths)
	}
	if kinds := auditor.kinds(); len(kinds) != 1 || kinds[0] != domain.EventLoginFailed {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_LoginPersistFailure(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(domain.LoginRequest) (*domain.LoginResponse, error) {
		return adminResponse(), nil
	}}
	store := newMemoryStore()
	store.saveErr = errors.New("redis down")
	m := newTestManager(auth, store, nil)
	m.Initialize(context.Background())

	err := m.Login(context.Background(), "admin", "admin123")
	if err == nil || !errors.Is(err, store.saveErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if m.State().IsAuthenticated {
		t.Fatalf("session must stay anonymous when the credential was not persisted")
	}
}

func TestSessionManager_Logout(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(domain.LoginRequest) (*domain.LoginResponse, error) {
		return adminResponse(), nil
	}}
	store := newMemoryStore()
	auditor := &recordingAuditor{}
	m := newTestManager(auth, store, auditor)
	m.Initialize(context.Background())
	if err := m.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	nav := &recordingNavigator{}
	m.Logout(ports.WithNavigator(context.Background(), nav))

	if s := m.State(); s.IsAuthenticated || s.CurrentUser != nil || s.IsLoading {
		t.Fatalf("unexpected state after logout: %+v", s)
	}
	if _, ok := store.get("ctx-1"); ok {
		t.Fatalf("expected credential to be cleared")
	}
	if m.Token(context.Background()) != "" {
		t.Fatalf("expected empty token after logout")
	}
	if len(nav.paths) != 1 || nav.paths[0] != domain.LoginPath {
		t.Fatalf("expected navigation to login, got %v", nav.paths)
	}
	if login, current := auth.calls(); login != 1 || current != 0 {
		t.Fatalf("logout must not call the backend, got login=%d current=%d", login, current)
	}
	kinds := auditor.kinds()
	if len(kinds) != 2 || kinds[1] != domain.EventLogout {
		t.Fatalf("unexpected audit events: %v", kinds)
	}
}

func TestSessionManager_StateIsSnapshot(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(domain.LoginRequest) (*domain.LoginResponse, error) {
		return adminResponse(), nil
	}}
	m := newTestManager(auth, newMemoryStore(), nil)
	m.Initialize(context.Background())
	_ = m.Login(context.Background(), "admin", "admin123")

	s := m.State()
	s.CurrentUser.Username = "mallory"
	if m.State().CurrentUser.Username != "admin" {
		t.Fatalf("State must return a copy")
	}
}
