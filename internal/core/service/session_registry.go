package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

// SessionFactory builds the manager for a newly seen browsing context.
type SessionFactory func(contextID string) *SessionManager

type registryEntry struct {
	manager  *SessionManager
	lastSeen time.Time
}

// SessionRegistry holds one SessionManager per browsing context. The first
// request of a context initializes its manager; requests racing with that
// initialization observe the loading state.
type SessionRegistry struct {
	factory   SessionFactory
	observers []SessionObserver
	log       zerolog.Logger
	now       func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewSessionRegistry creates a registry. observers are attached to every
// manager it creates, and see an evicted authenticated session as a
// transition to the zero session.
func NewSessionRegistry(factory SessionFactory, log zerolog.Logger, observers ...SessionObserver) *SessionRegistry {
	return &SessionRegistry{
		factory:   factory,
		observers: observers,
		log:       log.With().Str("component", "session_registry").Logger(),
		now:       time.Now,
		entries:   make(map[string]*registryEntry),
	}
}

// Get returns the manager for contextID, creating and initializing it on
// first sight. Initialization is detached from ctx cancellation so an aborted
// request cannot be mistaken for a rejected token.
func (r *SessionRegistry) Get(ctx context.Context, contextID string) *SessionManager {
	r.mu.Lock()
	if e, ok := r.entries[contextID]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.manager
	}

	m := r.factory(contextID)
	for _, fn := range r.observers {
		m.Subscribe(fn)
	}
	r.entries[contextID] = &registryEntry{manager: m, lastSeen: r.now()}
	r.mu.Unlock()

	m.Initialize(context.WithoutCancel(ctx))
	return m
}

// Len reports the number of in-memory sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops managers idle for longer than maxIdle and returns how many
// were removed. Persisted credentials are untouched; the next request of an
// evicted context revalidates its token.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var evicted []*SessionManager
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) && !e.manager.State().IsLoading {
			evicted = append(evicted, e.manager)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	r.release(evicted)
	if len(evicted) > 0 {
		r.log.Debug().Int("evicted", len(evicted)).Msg("idle sessions swept")
	}
	return len(evicted)
}

// Close drops every in-memory session.
func (r *SessionRegistry) Close() {
	r.mu.Lock()
	evicted := make([]*SessionManager, 0, len(r.entries))
	for _, e := range r.entries {
		evicted = append(evicted, e.manager)
	}
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	r.release(evicted)
}

func (r *SessionRegistry) release(managers []*SessionManager) {
	for _, m := range managers {
		prev := m.State()
		for _, fn := range r.observers {
			fn(prev, domain.Session{})
		}
	}
}
