package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// PropertyHandler serves bulk room operations and floor management. Bulk
// results are rendered with 200 whatever their per-item outcome; the body
// carries the success and failure counts.
type PropertyHandler struct {
	client *pms.Client
}

func NewPropertyHandler(client *pms.Client) *PropertyHandler {
	return &PropertyHandler{client: client}
}

func (h *PropertyHandler) property(c echo.Context) (*pms.PropertyService, error) {
	api, err := backendFor(c, h.client)
	if err != nil {
		return nil, err
	}
	return api.Property(), nil
}

// BulkCreateRooms creates rooms on one floor.
//
// @Summary      Bulk create rooms
// @Tags         property
// @Accept       json
// @Produce      json
// @Param        body  body      bulkCreateRoomsForm  true  "Rooms"
// @Success      200   {object}  domain.BulkOperationResponse
// @Failure      400   {object}  map[string]string
// @Router       /property/rooms/bulk-create [post]
func (h *PropertyHandler) BulkCreateRooms(c echo.Context) error {
	var form bulkCreateRoomsForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	status := form.Status
	if status == "" {
		status = domain.RoomReady
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	resp, err := svc.BulkCreateRooms(c.Request().Context(), domain.BulkCreateRoomsRequest{
		RoomTypeID:  form.RoomTypeID,
		Floor:       form.Floor,
		RoomNumbers: form.RoomNumbers,
		Status:      status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) BulkUpdateStatus(c echo.Context) error {
	var form bulkUpdateStatusForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	resp, err := svc.BulkUpdateStatus(c.Request().Context(), domain.BulkUpdateStatusRequest{
		RoomIDs: form.RoomIDs,
		Status:  form.Status,
		Notes:   form.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// BulkDeleteRooms expects a bare JSON array of room ids.
func (h *PropertyHandler) BulkDeleteRooms(c echo.Context) error {
	var ids []int64
	if err := (&echo.DefaultBinder{}).BindBody(c, &ids); err != nil || len(ids) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "roomIds is required")
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	resp, err := svc.BulkDeleteRooms(c.Request().Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) BulkAssignType(c echo.Context) error {
	var form bulkAssignTypeForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	resp, err := svc.BulkAssignType(c.Request().Context(), form.RoomIDs, form.RoomTypeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) FloorRooms(c echo.Context) error {
	floor, err := pathInt(c, "floor")
	if err != nil {
		return err
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	rooms, err := svc.RoomsByFloor(c.Request().Context(), floor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *PropertyHandler) UpdateFloorStatus(c echo.Context) error {
	floor, err := pathInt(c, "floor")
	if err != nil {
		return err
	}
	var form floorStatusForm
	if err := bindValid(c, &form); err != nil {
		return err
	}
	svc, err := h.property(c)
	if err != nil {
		return err
	}
	resp, err := svc.UpdateFloorStatus(c.Request().Context(), floor, form.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
