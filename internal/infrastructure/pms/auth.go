package pms

import (
	"context"
	"net/http"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const authPath = "/api/auth"

// AuthService wraps the /api/auth group. Validate and CurrentUser take the
// token explicitly because they run before a session is established.
type AuthService struct {
	c *Client
}

// Login exchanges credentials for a bearer token. It never sends a token.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	resp, err := call[domain.LoginResponse](ctx, s.c, Request{
		Op:     "auth.login",
		Method: http.MethodPost,
		Path:   authPath + "/login",
		Body:   req,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Validate(ctx context.Context, token string) (*domain.ValidateTokenResponse, error) {
	resp, err := call[domain.ValidateTokenResponse](ctx, s.c, Request{
		Op:     "auth.validate",
		Method: http.MethodPost,
		Path:   authPath + "/validate",
		Auth:   true,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser resolves the identity the token belongs to.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.UserIdentity, error) {
	user, err := call[domain.UserIdentity](ctx, s.c, Request{
		Op:     "auth.me",
		Method: http.MethodGet,
		Path:   authPath + "/me",
		Auth:   true,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
