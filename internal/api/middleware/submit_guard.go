package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/api/metrics"
	"github.com/hotelops/hotel-console/internal/core/domain"
)

// IdempotencyKeyHeader is the optional header the console sends with forms.
const IdempotencyKeyHeader = "Idempotency-Key"

// SubmitClaimer records submissions per browsing context.
type SubmitClaimer interface {
	Claim(ctx context.Context, contextID, key string) (bool, error)
	Release(ctx context.Context, contextID, key string) error
}

// SubmitGuard rejects a mutating request whose Idempotency-Key was already
// seen for the same browsing context. Requests without the header pass
// through. A failed handler releases its key so the form can be resent. The
// guard fails open when the claimer is unavailable.
func SubmitGuard(claimer SubmitClaimer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := strings.TrimSpace(req.Header.Get(IdempotencyKeyHeader))
			if key == "" || !mutating(req.Method) {
				return next(c)
			}
			id, _ := c.Get(ContextIDKey).(string)

			first, err := claimer.Claim(req.Context(), id, key)
			if err != nil {
				log.Warn().Err(err).Str("context_id", id).Msg("submit guard unavailable, allowing request")
				return next(c)
			}
			if !first {
				metrics.SubmitGuardTotal.WithLabelValues("hit").Inc()
				return domain.ErrDuplicateSubmit
			}
			metrics.SubmitGuardTotal.WithLabelValues("miss").Inc()

			if err := next(c); err != nil {
				if relErr := claimer.Release(context.WithoutCancel(req.Context()), id, key); relErr != nil {
					log.Warn().Err(relErr).Str("context_id", id).Msg("submit guard release failed")
				}
				return err
			}
			return nil
		}
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
