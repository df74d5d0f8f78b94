package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiki830621/che-things-mcp/internal/things"
	"github.com/kiki830621/che-things-mcp/pkg/response"
)

// statusFor maps the domain error taxonomy onto HTTP status codes.
// Script and URL-scheme failures are upstream failures, hence 502.
func statusFor(err error) int {
	var (
		ipe *things.InvalidParameterError
		nfe *things.NotFoundError
		se  *things.ScriptError
		use *things.URLSchemeError
	)
	switch {
	case errors.As(err, &ipe):
		return http.StatusBadRequest
	case errors.As(err, &nfe):
		return http.StatusNotFound
	case errors.Is(err, things.ErrApplicationNotRunning):
		return http.StatusServiceUnavailable
	case errors.As(err, &se), errors.As(err, &use):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondErr logs the failure and writes the mapped error envelope.
// Unclassified errors are hidden behind a generic 500 body.
func (h *handler) respondErr(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c)
		return
	}
	h.l.Warnf(ctx, "%s: %v", op, err)
	response.Error(c, status, err)
}
