package domain

import (
	"errors"
	"time"
)

// Fixed storage keys for the persisted credential of a browsing context.
const (
	StorageKeyToken = "authToken"
	StorageKeyUser  = "authUser"
)

// Console paths the route guard and the session manager navigate between.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// UnknownUserType is used when the backend omits the user type.
const UnknownUserType = "UNKNOWN"

var (
	ErrCredentialNotFound   = errors.New("credential not found")
	ErrCredentialUnreadable = errors.New("credential unreadable")
	ErrDuplicateSubmit      = errors.New("duplicate submission")
)

// UserIdentity is the snapshot of the logged-in user returned by the backend.
type UserIdentity struct {
	UserID   int64  `json:"userId" bson:"userId"`
	Username string `json:"username" bson:"username"`
	Name     string `json:"name" bson:"name"`
	Surname  string `json:"surname" bson:"surname"`
	Email    string `json:"email" bson:"email"`
	UserType string `json:"userType" bson:"userType"`
}

// Session is the in-memory authentication state of one browsing context.
type Session struct {
	CurrentUser     *UserIdentity `json:"currentUser,omitempty"`
	IsAuthenticated bool          `json:"isAuthenticated"`
	IsLoading       bool          `json:"isLoading"`
}

// PersistedCredential is what survives between visits: the bearer token and a
// denormalized copy of the identity for rendering before revalidation.
type PersistedCredential struct {
	Token string
	User  *UserIdentity
}

// SessionEventKind labels an audit-trail entry.
type SessionEventKind string

const (
	EventRestored       SessionEventKind = "session_restored"
	EventRejected       SessionEventKind = "session_rejected"
	EventLoginSucceeded SessionEventKind = "login_succeeded"
	EventLoginFailed    SessionEventKind = "login_failed"
	EventLogout         SessionEventKind = "logout"
)

func (k SessionEventKind) Valid() bool {
	switch k {
	case EventRestored, EventRejected, EventLoginSucceeded, EventLoginFailed, EventLogout:
		return true
	}
	return false
}

// SessionEvent records a session transition for a browsing context.
type SessionEvent struct {
	ContextID  string           `json:"context_id" bson:"context_id"`
	Kind       SessionEventKind `json:"kind" bson:"kind"`
	Username   string           `json:"username,omitempty" bson:"username,omitempty"`
	Detail     string           `json:"detail,omitempty" bson:"detail,omitempty"`
	OccurredAt time.Time        `json:"occurred_at" bson:"occurred_at"`
}
