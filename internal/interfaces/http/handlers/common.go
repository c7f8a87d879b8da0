package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/utils"
)

// respondUseCaseError maps domain sentinel errors to HTTP status codes and
// hides everything else behind a generic 500.
func respondUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrNotFound),
		errors.Is(err, customer.ErrDomainNotFound),
		errors.Is(err, subscription.ErrNotFound),
		errors.Is(err, notification.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponseWithError(c, err)
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
