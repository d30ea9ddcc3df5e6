package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/service"
)

// statusClientClosedRequest is the nginx convention for a request the client abandoned.
const statusClientClosedRequest = 499

// respondServiceError maps a store error onto an HTTP status. Anything unrecognised is
// logged and reported with the fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var notFound *service.NotFoundError
	var parseErr *service.ParseError

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &notFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &parseErr):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTrainingStatus):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrArchiveUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		abortWithError(c, http.StatusGatewayTimeout, "Request timed out")
	case errors.Is(err, context.Canceled):
		// The client went away; nobody reads the response.
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		log.Printf("ERROR: [%s] %s: %v", getRequestID(c), fallback, err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// parseIDParam reads the ":id" path parameter.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}
