// Package guard decides, for a session state and a requested console path,
// whether the page renders, waits for session initialization, or redirects.
package guard

import "github.com/hotelops/hotel-console/internal/core/domain"

// Kind is the outcome class of a guard evaluation.
type Kind int

const (
	Loading Kind = iota
	Render
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the result of Evaluate. Target is set only for Redirect.
type Decision struct {
	Kind   Kind
	Target string
}

// Evaluate applies the access rules in order: a loading session never
// renders or redirects; unauthenticated callers may only see the login page;
// authenticated callers are sent away from it.
func Evaluate(state domain.Session, path string) Decision {
	if state.IsLoading {
		return Decision{Kind: Loading}
	}

	onLogin := path == domain.LoginPath
	if !state.IsAuthenticated {
		if onLogin {
			return Decision{Kind: Render}
		}
		return Decision{Kind: Redirect, Target: domain.LoginPath}
	}

	if onLogin {
		return Decision{Kind: Redirect, Target: domain.HomePath}
	}
	return Decision{Kind: Render}
}
