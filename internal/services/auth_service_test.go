package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthService_Login(t *testing.T) {
	exp := fixedNow().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "admin", "exp": exp.Unix()})

	svc := NewAuthService(&fakeAuthGateway{resp: &dto.LoginResponse{Token: token, Username: "admin", Role: "ROLE_ADMIN"}}, fixedNow, nil)
	session, err := svc.Login(context.Background(), " admin ", "secret")
	require.NoError(t, err)

	assert.Equal(t, token, session.Token)
	assert.True(t, session.IsAdmin())
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, exp.Equal(*session.ExpiresAt))
	assert.False(t, svc.IsExpired(session.ExpiresAt))
}

func TestAuthService_LoginErrors(t *testing.T) {
	svc := NewAuthService(&fakeAuthGateway{err: &gateway.StatusError{Status: http.StatusUnauthorized}}, fixedNow, nil)

	_, err := svc.Login(context.Background(), "admin", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "bad")
	assert.ErrorIs(t, err, ErrCredentialsMissing)

	svc = NewAuthService(&fakeAuthGateway{err: &gateway.StatusError{Status: 0}}, fixedNow, nil)
	_, err = svc.Login(context.Background(), "admin", "secret")
	var statusErr *gateway.StatusError
	assert.ErrorAs(t, err, &statusErr)

	svc = NewAuthService(&fakeAuthGateway{resp: &dto.LoginResponse{}}, fixedNow, nil)
	_, err = svc.Login(context.Background(), "admin", "secret")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestTokenExpiry(t *testing.T) {
	assert.Nil(t, TokenExpiry("opaque-token"))
	assert.Nil(t, TokenExpiry(signedToken(t, jwt.MapClaims{"sub": "x"})))

	svc := NewAuthService(nil, fixedNow, nil)
	past := fixedNow().Add(-time.Minute)
	assert.True(t, svc.IsExpired(&past))
	assert.False(t, svc.IsExpired(nil))
}

func TestAuthService_LoginRejectsExpiredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "admin", "exp": fixedNow().Add(-time.Minute).Unix()})
	svc := NewAuthService(&fakeAuthGateway{resp: &dto.LoginResponse{Token: token}}, fixedNow, nil)

	_, err := svc.Login(context.Background(), "admin", "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}
