package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// AuthHandler serves the login screen, the session lifecycle endpoints and
// the home page.
type AuthHandler struct {
	client *pms.Client
	log    zerolog.Logger
}

func NewAuthHandler(client *pms.Client, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{client: client, log: log}
}

// LoginPage renders the login screen.
//
// @Summary      Login screen
// @Tags         session
// @Produce      json
// @Success      200  {object}  viewResponse
// @Success      302  {object}  map[string]string
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "login"})
}

// Login authenticates the caller against the PMS backend. On success the
// session manager navigates home, which the Session middleware turns into a
// 303 redirect.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginForm  true  "Credentials"
// @Success      303
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := bindValid(c, &form); err != nil {
		return err
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return sess.Login(c.Request().Context(), form.Username, form.Password)
}

// Logout forgets the caller's credential and redirects to the login screen.
//
// @Summary      Log out
// @Tags         session
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess.Logout(c.Request().Context())
	return nil
}

// Session returns the caller's session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  domain.Session
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.State())
}

// Home renders the landing page: the signed-in user plus the quick stats
// strip. A failing stats call degrades the page instead of failing it.
//
// @Summary      Home
// @Tags         session
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	resp := homeResponse{User: sess.State().CurrentUser}
	stats, err := h.client.WithTokenSource(sess).Financial().QuickStats(c.Request().Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("quick stats unavailable")
		resp.StatsError = err.Error()
	} else {
		resp.QuickStats = stats
	}
	return c.JSON(http.StatusOK, resp)
}
