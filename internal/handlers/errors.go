package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/assignment"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	apierrors "github.com/yukikurage/hr-dashboard/internal/errors"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
	"github.com/yukikurage/hr-dashboard/internal/middleware"
	"github.com/yukikurage/hr-dashboard/internal/services"
	"github.com/yukikurage/hr-dashboard/internal/validation"
)

func respondError(c *gin.Context, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		apierrors.ValidationFailed(c, validationErr.Message, validationErr)
		return
	}

	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		respondUpstreamError(c, statusErr)
		return
	}

	switch {
	case errors.Is(err, assignment.ErrWorkerAtCapacity),
		errors.Is(err, assignment.ErrProjectAtCapacity),
		errors.Is(err, assignment.ErrMaxWorkers),
		errors.Is(err, assignment.ErrProjectNotAvailable):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, assignment.ErrNoWorkersSelected),
		errors.Is(err, services.ErrInvalidRegistrationFilter),
		errors.Is(err, services.ErrCredentialsMissing):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, err.Error(), "")
	case errors.Is(err, services.ErrTokenExpired):
		apierrors.Unauthorized(c, apierrors.ErrCodeSessionExpired, err.Error(), constants.LoginRedirectLocation)
	default:
		apierrors.InternalError(c, "")
	}
}

func respondUpstreamError(c *gin.Context, err *gateway.StatusError) {
	switch {
	case err.Status == http.StatusUnauthorized:
		middleware.ClearSession(c)
		apierrors.Unauthorized(c, apierrors.ErrCodeSessionExpired, err.UserMessage(), constants.LoginRedirectLocation)
	case err.Status == http.StatusForbidden:
		apierrors.Forbidden(c, err.UserMessage())
	case err.Status == http.StatusNotFound:
		apierrors.NotFound(c, err.UserMessage())
	case err.Status == 0, err.Status >= http.StatusInternalServerError:
		apierrors.Upstream(c, http.StatusBadGateway, err.UserMessage())
	default:
		apierrors.Upstream(c, err.Status, err.UserMessage())
	}
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// bindOptionalJSON binds the body when one was sent
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}
