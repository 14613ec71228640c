package pms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const roomTypesPath = "/api/admin/room-types"

type RoomTypeService struct {
	c *Client
}

func (s *RoomTypeService) Create(ctx context.Context, req domain.CreateRoomTypeRequest) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.create", http.MethodPost, roomTypesPath, req)
}

// List returns all room types, or only those matching active when it is set.
func (s *RoomTypeService) List(ctx context.Context, active *bool) ([]domain.RoomType, error) {
	q := url.Values{}
	if active != nil {
		q.Set("active", strconv.FormatBool(*active))
	}
	return call[[]domain.RoomType](ctx, s.c, Request{
		Op:     "room_types.list",
		Method: http.MethodGet,
		Path:   roomTypesPath,
		Query:  q,
		Auth:   true,
	})
}

func (s *RoomTypeService) ListActive(ctx context.Context) ([]domain.RoomType, error) {
	return s.many(ctx, "room_types.list_active", roomTypesPath+"/active")
}

func (s *RoomTypeService) ListInactive(ctx context.Context) ([]domain.RoomType, error) {
	return s.many(ctx, "room_types.list_inactive", roomTypesPath+"/inactive")
}

func (s *RoomTypeService) Get(ctx context.Context, id int64) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.get", http.MethodGet, roomTypePath(id), nil)
}

func (s *RoomTypeService) GetByName(ctx context.Context, name string) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.get_by_name", http.MethodGet, roomTypesPath+"/name/"+url.PathEscape(name), nil)
}

func (s *RoomTypeService) Update(ctx context.Context, id int64, req domain.UpdateRoomTypeRequest) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.update", http.MethodPut, roomTypePath(id), req)
}

func (s *RoomTypeService) Activate(ctx context.Context, id int64) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.activate", http.MethodPost, roomTypePath(id)+"/activate", nil)
}

func (s *RoomTypeService) Deactivate(ctx context.Context, id int64) (*domain.RoomType, error) {
	return s.one(ctx, "room_types.deactivate", http.MethodPost, roomTypePath(id)+"/deactivate", nil)
}

func (s *RoomTypeService) Delete(ctx context.Context, id int64) (*domain.MessageResponse, error) {
	msg, err := call[domain.MessageResponse](ctx, s.c, Request{
		Op:     "room_types.delete",
		Method: http.MethodDelete,
		Path:   roomTypePath(id),
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *RoomTypeService) Statistics(ctx context.Context) (*domain.PropertyStatistics, error) {
	stats, err := call[domain.PropertyStatistics](ctx, s.c, Request{
		Op:     "room_types.statistics",
		Method: http.MethodGet,
		Path:   roomTypesPath + "/statistics",
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *RoomTypeService) one(ctx context.Context, op, method, path string, body any) (*domain.RoomType, error) {
	rt, err := call[domain.RoomType](ctx, s.c, Request{Op: op, Method: method, Path: path, Body: body, Auth: true})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) many(ctx context.Context, op, path string) ([]domain.RoomType, error) {
	return call[[]domain.RoomType](ctx, s.c, Request{Op: op, Method: http.MethodGet, Path: path, Auth: true})
}

func roomTypePath(id int64) string {
	return roomTypesPath + "/" + strconv.FormatInt(id, 10)
}
