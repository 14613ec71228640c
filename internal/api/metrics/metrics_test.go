package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

func TestTrackAuthenticated(t *testing.T) {
	base := testutil.ToFloat64(AuthenticatedSessions)

	loading := domain.Session{IsLoading: true}
	anon := domain.Session{}
	authed := domain.Session{IsAuthenticated: true, CurrentUser: &domain.UserIdentity{Username: "alice"}}

	steps := []struct {
		prev, next domain.Session
		want       float64
	}{
		{prev: loading, next: authed, want: 1},
		{prev: authed, next: authed, want: 1},
		{prev: loading, next: anon, want: 1},
		{prev: anon, next: authed, want: 2},
		{prev: authed, next: anon, want: 1},
		{prev: authed, next: domain.Session{}, want: 0},
	}
	for i, s := range steps {
		TrackAuthenticated(s.prev, s.next)
		if got := testutil.ToFloat64(AuthenticatedSessions) - base; got != s.want {
			t.Fatalf("step %d: expected %v authenticated, got %v", i, s.want, got)
		}
	}
}
