package handler

import (
	"github.com/gin-gonic/gin"

	"izmena/pkg/response"
)

// MustGetUserID extracts user_id injected by the JWT middleware. When
// it is missing the 401 response is already written; the caller should
// return on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
