package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-graph/dto"
	"content-graph/cluster"
	"content-graph/config"
	"content-graph/repositories"
	"content-graph/scan"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scan.ErrInvalidRequest),
		errors.Is(err, cluster.ErrInvalidRequest),
		errors.Is(err, cluster.ErrNoApprovedItems):
		return http.StatusBadRequest
	case errors.Is(err, scan.ErrScanInProgress),
		errors.Is(err, scan.ErrRunRunning),
		errors.Is(err, cluster.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		config.Logger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: err.Error()})
}
