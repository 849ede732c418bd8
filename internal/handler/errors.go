package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/kasapi"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/internal/resource"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// respondError maps a service error onto the error envelope and logs it
func respondError(c *gin.Context, log *logger.Logger, message string, err error) {
	var (
		validationErr *service.ValidationError
		apiErr        *kasapi.APIError
		urlErr        *url.Error
	)

	entry := log.WithError(err).WithField("path", c.FullPath())
	switch {
	case errors.As(err, &validationErr):
		entry.Warn(message)
		utils.BadRequestResponse(c, message, err)
	case errors.Is(err, pagination.ErrPageOutOfRange), errors.Is(err, pagination.ErrInvalidSize):
		entry.Warn(message)
		utils.BadRequestResponse(c, message, err)
	case errors.Is(err, service.ErrExportNotFound):
		entry.Warn(message)
		utils.NotFoundResponse(c, message)
	case errors.Is(err, resource.ErrLoadInFlight):
		entry.Warn(message)
		utils.ConflictResponse(c, message, err)
	case errors.As(err, &apiErr):
		entry = entry.WithField("upstream_status", apiErr.StatusCode)
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			entry.Warn(message)
			utils.NotFoundResponse(c, message)
		case http.StatusUnauthorized, http.StatusForbidden:
			entry.Warn(message)
			utils.UnauthorizedResponse(c, message)
		default:
			entry.Error(message)
			utils.BadGatewayResponse(c, message, err)
		}
	case errors.As(err, &urlErr):
		entry.Error(message)
		utils.BadGatewayResponse(c, message, err)
	default:
		entry.Error(message)
		utils.InternalServerErrorResponse(c, message, err)
	}
}

// respondState answers with the resulting state of a paginated resource. A load dropped
// because another one is running is answered 202 with the state as it is.
func respondState[T any](c *gin.Context, log *logger.Logger, message string, data *T, err error) {
	switch {
	case err == nil:
		utils.SuccessResponse(c, message, data)
	case errors.Is(err, resource.ErrLoadInFlight) && data != nil:
		utils.AcceptedResponse(c, "Load already in progress", data)
	default:
		respondError(c, log, message, err)
	}
}
