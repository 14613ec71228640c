package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/api/middleware"
	"github.com/hotelops/hotel-console/internal/core/ports"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// ctxSession returns the session attached by the Session middleware. Its
// absence means the route was registered outside the guarded group.
func ctxSession(c echo.Context) (ports.SessionService, error) {
	sess, ok := c.Get(middleware.SessionKey).(ports.SessionService)
	if !ok || sess == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "missing session")
	}
	return sess, nil
}

// backendFor returns a client that authenticates as the caller's session.
func backendFor(c echo.Context, client *pms.Client) (*pms.Client, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return nil, err
	}
	return client.WithTokenSource(sess), nil
}
