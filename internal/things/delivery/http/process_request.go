package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// validator is implemented by every request body that has required
// fields.
type validator interface {
	validate() error
}

// decode binds the JSON body into a request type and runs its
// validation. Binding failures surface as invalid-parameter errors so
// they map to 400 like every other malformed input.
func decode[T validator](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, things.NewInvalidParameter("invalid request body: %v", err)
	}
	return req, req.validate()
}

// decodeOptional binds a body whose fields are all optional. A missing
// or empty body is fine.
func decodeOptional[T any](c *gin.Context) (T, error) {
	var req T
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, things.NewInvalidParameter("invalid request body: %v", err)
	}
	return req, nil
}
