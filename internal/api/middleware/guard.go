package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/api/metrics"
	"github.com/hotelops/hotel-console/internal/core/guard"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

type loadingView struct {
	View string `json:"view"`
}

type redirectView struct {
	Redirect string `json:"redirect"`
}

// Guard enforces the console access rules on every request using the state
// of the session attached by Session.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get(SessionKey).(ports.SessionService)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "missing session")
			}

			decision := guard.Evaluate(sess.State(), c.Request().URL.Path)
			metrics.GuardDecisionsTotal.WithLabelValues(decision.Kind.String()).Inc()

			switch decision.Kind {
			case guard.Loading:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusAccepted, loadingView{View: "loading"})
			case guard.Redirect:
				c.Response().Header().Set(echo.HeaderLocation, decision.Target)
				return c.JSON(http.StatusFound, redirectView{Redirect: decision.Target})
			default:
				return next(c)
			}
		}
	}
}
