package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// RoomTypeHandler serves the room type catalogue screens.
type RoomTypeHandler struct {
	client *pms.Client
}

func NewRoomTypeHandler(client *pms.Client) *RoomTypeHandler {
	return &RoomTypeHandler{client: client}
}

func (h *RoomTypeHandler) roomTypes(c echo.Context) (*pms.RoomTypeService, error) {
	api, err := backendFor(c, h.client)
	if err != nil {
		return nil, err
	}
	return api.RoomTypes(), nil
}

// List returns room types, optionally filtered by the active flag.
//
// @Summary      List room types
// @Tags         property
// @Produce      json
// @Param        active  query     bool  false  "Active filter"
// @Success      200     {array}   domain.RoomType
// @Router       /property/room-types [get]
func (h *RoomTypeHandler) List(c echo.Context) error {
	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	types, err := svc.List(c.Request().Context(), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

func (h *RoomTypeHandler) ListActive(c echo.Context) error {
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	types, err := svc.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

func (h *RoomTypeHandler) ListInactive(c echo.Context) error {
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	types, err := svc.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

func (h *RoomTypeHandler) Statistics(c echo.Context) error {
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	stats, err := svc.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *RoomTypeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	rt, err := svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoomTypeHandler) GetByName(c echo.Context) error {
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	rt, err := svc.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// Create adds a room type.
//
// @Summary      Create room type
// @Tags         property
// @Accept       json
// @Produce      json
// @Param        body  body      roomTypeForm  true  "Room type"
// @Success      201   {object}  domain.RoomType
// @Failure      400   {object}  map[string]string
// @Router       /property/room-types [post]
func (h *RoomTypeHandler) Create(c echo.Context) error {
	var form roomTypeForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	rt, err := svc.Create(c.Request().Context(), form.toRequest())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rt)
}

func (h *RoomTypeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.UpdateRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	rt, err := svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoomTypeHandler) Activate(c echo.Context) error {
	return h.toggle(c, true)
}

func (h *RoomTypeHandler) Deactivate(c echo.Context) error {
	return h.toggle(c, false)
}

func (h *RoomTypeHandler) toggle(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	var rt *domain.RoomType
	if active {
		rt, err = svc.Activate(c.Request().Context(), id)
	} else {
		rt, err = svc.Deactivate(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoomTypeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.roomTypes(c)
	if err != nil {
		return err
	}
	msg, err := svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
