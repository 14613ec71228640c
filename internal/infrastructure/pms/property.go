package pms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const propertyPath = "/api/admin/property"

// PropertyService wraps bulk room operations and floor-scoped queries.
// Bulk calls return the per-item report even when some items failed.
type PropertyService struct {
	c *Client
}

func (s *PropertyService) BulkCreateRooms(ctx context.Context, req domain.BulkCreateRoomsRequest) (*domain.BulkOperationResponse, error) {
	return s.bulk(ctx, Request{
		Op:     "property.bulk_create",
		Method: http.MethodPost,
		Path:   propertyPath + "/rooms/bulk-create",
		Body:   req,
	})
}

func (s *PropertyService) BulkUpdateStatus(ctx context.Context, req domain.BulkUpdateStatusRequest) (*domain.BulkOperationResponse, error) {
	return s.bulk(ctx, Request{
		Op:     "property.bulk_update_status",
		Method: http.MethodPost,
		Path:   propertyPath + "/rooms/bulk-update-status",
		Body:   req,
	})
}

// BulkDeleteRooms sends the ids as a bare JSON array in a DELETE body.
func (s *PropertyService) BulkDeleteRooms(ctx context.Context, roomIDs []int64) (*domain.BulkOperationResponse, error) {
	if roomIDs == nil {
		roomIDs = []int64{}
	}
	return s.bulk(ctx, Request{
		Op:     "property.bulk_delete",
		Method: http.MethodDelete,
		Path:   propertyPath + "/rooms/bulk-delete",
		Body:   roomIDs,
	})
}

func (s *PropertyService) BulkAssignType(ctx context.Context, roomIDs []int64, roomTypeID int64) (*domain.BulkOperationResponse, error) {
	ids := make([]string, 0, len(roomIDs))
	for _, id := range roomIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	q := url.Values{}
	q.Set("roomIds", strings.Join(ids, ","))
	q.Set("roomTypeId", strconv.FormatInt(roomTypeID, 10))

	return s.bulk(ctx, Request{
		Op:     "property.bulk_assign_type",
		Method: http.MethodPost,
		Path:   propertyPath + "/rooms/bulk-assign-type",
		Query:  q,
	})
}

func (s *PropertyService) RoomsByFloor(ctx context.Context, floor int) ([]domain.Room, error) {
	return call[[]domain.Room](ctx, s.c, Request{
		Op:     "property.floor_rooms",
		Method: http.MethodGet,
		Path:   floorPath(floor) + "/rooms",
		Auth:   true,
	})
}

func (s *PropertyService) UpdateFloorStatus(ctx context.Context, floor int, status domain.RoomStatus) (*domain.FloorUpdateResponse, error) {
	q := url.Values{}
	q.Set("status", string(status))
	resp, err := call[domain.FloorUpdateResponse](ctx, s.c, Request{
		Op:     "property.floor_update_status",
		Method: http.MethodPost,
		Path:   floorPath(floor) + "/bulk-update-status",
		Query:  q,
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PropertyService) bulk(ctx context.Context, req Request) (*domain.BulkOperationResponse, error) {
	req.Auth = true
	resp, err := call[domain.BulkOperationResponse](ctx, s.c, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func floorPath(floor int) string {
	return propertyPath + "/floors/" + strconv.Itoa(floor)
}
