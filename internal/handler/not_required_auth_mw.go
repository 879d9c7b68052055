package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware resolves the caller identity when a valid
// token is present and stays silent otherwise: a missing or broken
// token means the request proceeds as anonymous.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.Next()
		return
	}

	identity, err := identityFromAccessToken(accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set(identityCtxKey, identity)

	c.Next()
}
