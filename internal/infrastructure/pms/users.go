package pms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const usersPath = "/api/admin/users"

type UserService struct {
	c *Client
}

func (s *UserService) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	return s.one(ctx, "users.create", http.MethodPost, usersPath, req)
}

// List returns users matching filter. Unset filter fields are left out of
// the query string entirely.
func (s *UserService) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	return call[[]domain.User](ctx, s.c, Request{
		Op:     "users.list",
		Method: http.MethodGet,
		Path:   usersPath,
		Query:  userFilterQuery(filter),
		Auth:   true,
	})
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.one(ctx, "users.get", http.MethodGet, userPath(id), nil)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.one(ctx, "users.get_by_username", http.MethodGet, usersPath+"/username/"+url.PathEscape(username), nil)
}

func (s *UserService) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return s.many(ctx, "users.list_by_role", usersPath+"/role/"+url.PathEscape(string(role)))
}

func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.many(ctx, "users.list_active", usersPath+"/active")
}

func (s *UserService) ListInactive(ctx context.Context) ([]domain.User, error) {
	return s.many(ctx, "users.list_inactive", usersPath+"/inactive")
}

func (s *UserService) Statistics(ctx context.Context) (*domain.UserStatistics, error) {
	stats, err := call[domain.UserStatistics](ctx, s.c, Request{
		Op:     "users.statistics",
		Method: http.MethodGet,
		Path:   usersPath + "/statistics",
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	return s.one(ctx, "users.update", http.MethodPut, userPath(id), req)
}

func (s *UserService) ChangePassword(ctx context.Context, id int64, req domain.ChangePasswordRequest) (*domain.MessageResponse, error) {
	return s.message(ctx, "users.change_password", http.MethodPut, userPath(id)+"/password", req)
}

func (s *UserService) Activate(ctx context.Context, id int64) (*domain.User, error) {
	return s.one(ctx, "users.activate", http.MethodPost, userPath(id)+"/activate", nil)
}

func (s *UserService) Deactivate(ctx context.Context, id int64) (*domain.User, error) {
	return s.one(ctx, "users.deactivate", http.MethodPost, userPath(id)+"/deactivate", nil)
}

func (s *UserService) Delete(ctx context.Context, id int64) (*domain.MessageResponse, error) {
	return s.message(ctx, "users.delete", http.MethodDelete, userPath(id), nil)
}

func (s *UserService) one(ctx context.Context, op, method, path string, body any) (*domain.User, error) {
	user, err := call[domain.User](ctx, s.c, Request{Op: op, Method: method, Path: path, Body: body, Auth: true})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) many(ctx context.Context, op, path string) ([]domain.User, error) {
	return call[[]domain.User](ctx, s.c, Request{Op: op, Method: http.MethodGet, Path: path, Auth: true})
}

func (s *UserService) message(ctx context.Context, op, method, path string, body any) (*domain.MessageResponse, error) {
	msg, err := call[domain.MessageResponse](ctx, s.c, Request{Op: op, Method: method, Path: path, Body: body, Auth: true})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func userPath(id int64) string {
	return usersPath + "/" + strconv.FormatInt(id, 10)
}

func userFilterQuery(f domain.UserFilter) url.Values {
	q := url.Values{}
	if f.Role != nil && *f.Role != "" {
		q.Set("role", string(*f.Role))
	}
	if f.Active != nil {
		q.Set("active", strconv.FormatBool(*f.Active))
	}
	return q
}
