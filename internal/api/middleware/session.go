package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/ports"
	"github.com/hotelops/hotel-console/internal/core/service"
)

// SessionKey is the echo context key holding the caller's session manager.
const SessionKey = "session"

// SessionProvider returns the session manager of a browsing context.
type SessionProvider interface {
	Get(ctx context.Context, contextID string) *service.SessionManager
}

// redirectNavigator records the last navigation requested while handling a
// request.
type redirectNavigator struct {
	target string
}

func (n *redirectNavigator) Navigate(path string) { n.target = path }

// Session attaches the caller's session manager and a request-scoped
// navigator. A navigation requested by the handler becomes a 303 redirect
// when the handler did not write a response itself.
func Session(provider SessionProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(ContextIDKey).(string)
			if id == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "missing browsing context")
			}

			req := c.Request()
			c.Set(SessionKey, provider.Get(req.Context(), id))

			nav := &redirectNavigator{}
			c.SetRequest(req.WithContext(ports.WithNavigator(req.Context(), nav)))

			if err := next(c); err != nil {
				return err
			}
			if nav.target != "" && !c.Response().Committed {
				return c.Redirect(http.StatusSeeOther, nav.target)
			}
			return nil
		}
	}
}
