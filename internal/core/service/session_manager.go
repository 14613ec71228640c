package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

// SessionObserver is notified after every state change of a SessionManager.
type SessionObserver func(prev, next domain.Session)

// SessionManager owns the authentication state of one browsing context.
// It starts loading and leaves that state exactly once, in Initialize.
type SessionManager struct {
	contextID string
	auth      ports.AuthAPI
	store     ports.CredentialStore
	auditor   ports.SessionAuditor
	log       zerolog.Logger
	now       func() time.Time

	mu        sync.RWMutex
	state     domain.Session
	observers []SessionObserver
	initOnce  sync.Once
}

var _ ports.SessionService = (*SessionManager)(nil)

// NewSessionManager creates a manager for contextID. auditor may be nil.
func NewSessionManager(
	contextID string,
	auth ports.AuthAPI,
	store ports.CredentialStore,
	auditor ports.SessionAuditor,
	log zerolog.Logger,
) *SessionManager {
	return &SessionManager{
		contextID: contextID,
		auth:      auth,
		store:     store,
		auditor:   auditor,
		log:       log.With().Str("context_id", contextID).Logger(),
		now:       time.Now,
		state:     domain.Session{IsLoading: true},
	}
}

func (m *SessionManager) ContextID() string { return m.contextID }

// State returns a snapshot of the current session.
func (m *SessionManager) State() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.state)
}

// Subscribe registers fn for subsequent state changes.
func (m *SessionManager) Subscribe(fn SessionObserver) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

// Initialize revalidates the persisted token, if any, against the backend.
// Failures are never returned: an unusable token is cleared and the session
// settles as unauthenticated. Only the first call has any effect.
func (m *SessionManager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() { m.initialize(ctx) })
}

func (m *SessionManager) initialize(ctx context.Context) {
	cred, err := m.store.Load(ctx, m.contextID)
	switch {
	case errors.Is(err, domain.ErrCredentialUnreadable):
		m.log.Info().Err(err).Msg("persisted token unreadable")
		m.clearPersisted(ctx)
		m.settle(domain.Session{})
		m.audit(domain.EventRejected, "", err.Error())
		return
	case err != nil:
		if !errors.Is(err, domain.ErrCredentialNotFound) {
			m.log.Error().Err(err).Msg("load persisted credential failed")
		}
		m.settle(domain.Session{})
		return
	}
	if cred.Token == "" {
		m.settle(domain.Session{})
		return
	}

	user, err := m.auth.CurrentUser(ctx, cred.Token)
	if err != nil {
		m.log.Info().Err(err).Msg("persisted token rejected")
		m.clearPersisted(ctx)
		m.settle(domain.Session{})
		m.audit(domain.EventRejected, usernameOf(cred.User), err.Error())
		return
	}

	identity := *user
	if identity.UserType == "" {
		identity.UserType = domain.UnknownUserType
	}
	m.settle(domain.Session{CurrentUser: &identity, IsAuthenticated: true})
	m.log.Debug().Str("username", identity.Username).Msg("session restored")
	m.audit(domain.EventRestored, identity.Username, "")
}

// Login authenticates against the backend. Backend failures are returned
// unchanged and leave the session as it was. On success the credential is
// persisted before the session turns authenticated and the caller is sent
// to the home page.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	resp, err := m.auth.Login(ctx, domain.LoginRequest{Username: username, Password: password})
	if err != nil {
		m.audit(domain.EventLoginFailed, username, err.Error())
		return err
	}

	identity := resp.Identity()
	if err := m.store.Save(ctx, m.contextID, domain.PersistedCredential{Token: resp.Token, User: &identity}); err != nil {
		m.log.Error().Err(err).Str("username", username).Msg("persist credential failed")
		return fmt.Errorf("persist credential: %w", err)
	}

	m.transition(func(s *domain.Session) {
		s.CurrentUser = &identity
		s.IsAuthenticated = true
		s.IsLoading = false
	})
	m.audit(domain.EventLoginSucceeded, identity.Username, "")
	navigate(ctx, domain.HomePath)
	return nil
}

// Logout forgets the credential locally. The backend is not contacted.
func (m *SessionManager) Logout(ctx context.Context) {
	username := usernameOf(m.State().CurrentUser)

	if err := m.store.Clear(ctx, m.contextID); err != nil {
		m.log.Error().Err(err).Msg("clear persisted credential failed")
	}
	m.transition(func(s *domain.Session) {
		s.CurrentUser = nil
		s.IsAuthenticated = false
		s.IsLoading = false
	})
	m.audit(domain.EventLogout, username, "")
	navigate(ctx, domain.LoginPath)
}

// Token returns the persisted bearer token, or "" when there is none.
func (m *SessionManager) Token(ctx context.Context) string {
	cred, err := m.store.Load(ctx, m.contextID)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialNotFound) {
			m.log.Warn().Err(err).Msg("read persisted token failed")
		}
		return ""
	}
	return cred.Token
}

func (m *SessionManager) clearPersisted(ctx context.Context) {
	if err := m.store.Clear(ctx, m.contextID); err != nil {
		m.log.Error().Err(err).Msg("clear persisted credential failed")
	}
}

// settle ends initialization with next as the terminal state.
func (m *SessionManager) settle(next domain.Session) {
	m.transition(func(s *domain.Session) {
		*s = next
		s.IsLoading = false
	})
}

func (m *SessionManager) transition(apply func(*domain.Session)) {
	m.mu.Lock()
	prev := snapshot(m.state)
	apply(&m.state)
	next := snapshot(m.state)
	observers := append([]SessionObserver(nil), m.observers...)
	m.mu.Unlock()

	for _, fn := range observers {
		fn(prev, next)
	}
}

func (m *SessionManager) audit(kind domain.SessionEventKind, username, detail string) {
	if m.auditor == nil {
		return
	}
	m.auditor.Enqueue(domain.SessionEvent{
		ContextID:  m.contextID,
		Kind:       kind,
		Username:   username,
		Detail:     detail,
		OccurredAt: m.now().UTC(),
	})
}

func navigate(ctx context.Context, path string) {
	if nav := ports.NavigatorFrom(ctx); nav != nil {
		nav.Navigate(path)
	}
}

func snapshot(s domain.Session) domain.Session {
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		s.CurrentUser = &u
	}
	return s
}

func usernameOf(u *domain.UserIdentity) string {
	if u == nil {
		return ""
	}
	return u.Username
}
