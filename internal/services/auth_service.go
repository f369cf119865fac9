package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("Usuario o contraseña incorrectos")
	ErrCredentialsMissing = errors.New("username and password are required")
	ErrEmptyToken         = errors.New("upstream returned an empty token")
	ErrTokenExpired       = errors.New("Tu sesión expiró. Por favor vuelve a iniciar sesión")
)

// AuthService handles authentication against the upstream API.
type AuthService struct {
	gateway AuthGateway
	now     func() time.Time
	logger  *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(gateway AuthGateway, now func() time.Time, logger *zap.Logger) *AuthService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		gateway: gateway,
		now:     now,
		logger:  logger,
	}
}

// Session is the authenticated identity held between requests.
type Session struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt *time.Time
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool {
	return s.Role == constants.AdminRole
}

// Login exchanges the credentials for an upstream token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredentialsMissing
	}

	resp, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		if gateway.IsUnauthorized(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if resp.Token == "" {
		return nil, ErrEmptyToken
	}

	session := &Session{
		Token:     resp.Token,
		Username:  resp.Username,
		Role:      resp.Role,
		ExpiresAt: TokenExpiry(resp.Token),
	}
	if session.Username == "" {
		session.Username = username
	}
	if s.IsExpired(session.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	s.logger.Info("user logged in", zap.String("username", session.Username), zap.String("role", session.Role))
	return session, nil
}

// IsExpired reports whether expiresAt has passed. A nil expiry never expires.
func (s *AuthService) IsExpired(expiresAt *time.Time) bool {
	return expiresAt != nil && !s.now().Before(*expiresAt)
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// It returns nil when the token is not a JWT or carries no expiry.
func TokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
