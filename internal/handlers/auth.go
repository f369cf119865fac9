package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	apierrors "github.com/yukikurage/hr-dashboard/internal/errors"
	"github.com/yukikurage/hr-dashboard/internal/middleware"
	"github.com/yukikurage/hr-dashboard/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates against the upstream and stores its token in the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	login, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.SessionKeyToken, login.Token)
	session.Set(constants.SessionKeyUsername, login.Username)
	session.Set(constants.SessionKeyRole, login.Role)
	if login.ExpiresAt != nil {
		session.Set(middleware.SessionKeyExpiresAt, login.ExpiresAt.Unix())
	}
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.SessionDTO{
		Username:  login.Username,
		Role:      login.Role,
		IsAdmin:   login.IsAdmin(),
		ExpiresAt: login.ExpiresAt,
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged out successfully",
		"redirect": constants.LoginRedirectLocation,
	})
}

// GetCurrentUser returns the authenticated identity.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "", "Not authenticated", constants.LoginRedirectLocation)
		return
	}

	role := middleware.GetRole(c)
	resp := dto.SessionDTO{
		Username: username,
		Role:     role,
		IsAdmin:  services.Session{Role: role}.IsAdmin(),
	}
	if exp, ok := sessions.Default(c).Get(middleware.SessionKeyExpiresAt).(int64); ok {
		t := time.Unix(exp, 0).UTC()
		resp.ExpiresAt = &t
	}

	c.JSON(http.StatusOK, resp)
}
