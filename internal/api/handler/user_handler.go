package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// UserHandler serves the staff user management screens.
type UserHandler struct {
	client *pms.Client
}

func NewUserHandler(client *pms.Client) *UserHandler {
	return &UserHandler{client: client}
}

func (h *UserHandler) users(c echo.Context) (*pms.UserService, error) {
	api, err := backendFor(c, h.client)
	if err != nil {
		return nil, err
	}
	return api.Users(), nil
}

// List returns users, optionally filtered by role and active flag.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role    query     string  false  "Role filter"
// @Param        active  query     bool    false  "Active filter"
// @Success      200     {array}   domain.User
// @Failure      400     {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var filter domain.UserFilter
	if raw := strings.TrimSpace(c.QueryParam("role")); raw != "" {
		role := domain.UserRole(strings.ToUpper(raw))
		if !role.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
		}
		filter.Role = &role
	}
	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}
	filter.Active = active

	svc, err := h.users(c)
	if err != nil {
		return err
	}
	users, err := svc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListActive(c echo.Context) error {
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	users, err := svc.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListInactive(c echo.Context) error {
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	users, err := svc.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListByRole(c echo.Context) error {
	role := domain.UserRole(strings.ToUpper(c.Param("role")))
	if !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	users, err := svc.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Statistics returns user counts by state and role.
//
// @Summary      User statistics
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserStatistics
// @Router       /users/statistics [get]
func (h *UserHandler) Statistics(c echo.Context) error {
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	stats, err := svc.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	user, err := svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByUsername(c echo.Context) error {
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	user, err := svc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create adds a staff user.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserForm  true  "User"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var form createUserForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	user, err := svc.Create(c.Request().Context(), form.toRequest())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update sends only the fields present in the body.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	user, err := svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var form changePasswordForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	msg, err := svc.ChangePassword(c.Request().Context(), id, domain.ChangePasswordRequest{NewPassword: form.NewPassword})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *UserHandler) Activate(c echo.Context) error {
	return h.toggle(c, true)
}

func (h *UserHandler) Deactivate(c echo.Context) error {
	return h.toggle(c, false)
}

func (h *UserHandler) toggle(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	var user *domain.User
	if active {
		user, err = svc.Activate(c.Request().Context(), id)
	} else {
		user, err = svc.Deactivate(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.users(c)
	if err != nil {
		return err
	}
	msg, err := svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
