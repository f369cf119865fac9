package gateway

import (
	"context"
	"net/http"

	"github.com/yukikurage/hr-dashboard/internal/dto"
)

// AuthGateway exchanges credentials for an upstream token.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates a new AuthGateway
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login posts the credentials and returns the issued token and identity.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Username: username, Password: password}
	if err := g.client.do(ctx, http.MethodPost, loginPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
