package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Relays backend failures with the backend's status and message.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if apiErr, ok := pms.AsAPIError(err); ok {
		switch {
		case apiErr.Invalid():
			return http.StatusBadRequest, apiErr.Message
		case apiErr.Transport(), apiErr.Status < http.StatusBadRequest:
			log.Warn().Err(apiErr.Err).Str("op", apiErr.Op).Int("status", apiErr.Status).Msg("backend call failed")
			return http.StatusBadGateway, apiErr.Message
		default:
			return apiErr.Status, apiErr.Message
		}
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateSubmit):
		return http.StatusConflict, "duplicate submission"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
