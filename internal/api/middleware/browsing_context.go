package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextCookieName carries the signed browsing context id.
	ContextCookieName = "console_ctx"
	// ContextIDKey is the echo context key holding the browsing context id.
	ContextIDKey = "context_id"

	contextIssuer     = "hotel-console"
	defaultContextAge = 30 * 24 * time.Hour
)

// BrowsingContextConfig configures the browsing context cookie.
type BrowsingContextConfig struct {
	Secret string
	Secure bool
	MaxAge time.Duration
}

// BrowsingContext identifies the caller's browser. A valid signed cookie is
// reused; a missing or tampered one is replaced with a fresh id.
func BrowsingContext(cfg BrowsingContextConfig) echo.MiddlewareFunc {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultContextAge
	}
	key := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(ContextCookieName); err == nil {
				id = parseContextToken(cookie.Value, key)
			}

			if id == "" {
				id = uuid.NewString()
				signed, err := signContextToken(id, key, cfg.MaxAge)
				if err != nil {
					return err
				}
				c.SetCookie(&http.Cookie{
					Name:     ContextCookieName,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(cfg.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextIDKey, id)
			return next(c)
		}
	}
}

func signContextToken(id string, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    contextIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// parseContextToken returns the context id of a valid token, or "".
func parseContextToken(raw string, key []byte) string {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return key, nil
	}, jwt.WithIssuer(contextIssuer))
	if err != nil || !tkn.Valid {
		return ""
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return ""
	}
	return claims.ID
}
