package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme/dashboard-gateway/internal/application/dashboard"
	"github.com/acme/dashboard-gateway/internal/domain/shared"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// FetchFailed renders an aggregation failure with its fixed domain
// message. A missing resource maps to 404, everything else to 502
// since the gateway itself is healthy and an upstream call failed.
func (h *BaseHandler) FetchFailed(c *gin.Context, err error) {
	var fetchErr *dashboard.FetchError
	if errors.As(err, &fetchErr) {
		if errors.Is(fetchErr, shared.ErrNotFound) {
			h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, fetchErr.Message)
			return
		}
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstream, fetchErr.Message)
		return
	}
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Something went wrong.")
}

// MutationOutcome renders a mutation state with a status code matching
// the outcome: field errors keep the user on the form with 400, remote
// failures surface as 502, success returns the invalidate/navigate signal.
func (h *BaseHandler) MutationOutcome(c *gin.Context, state dashboard.MutationState) {
	switch {
	case len(state.Errors) > 0:
		c.JSON(http.StatusBadRequest, dto.Response{Success: false, Data: state})
	case state.OK():
		c.JSON(http.StatusOK, dto.Response{Success: true, Data: state})
	default:
		c.JSON(http.StatusBadGateway, dto.Response{Success: false, Data: state})
	}
}
