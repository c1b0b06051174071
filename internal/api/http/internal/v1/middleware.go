package v1

import (
	"github.com/gin-gonic/gin"
)

const tokenCookie = "token"

// adminIdentity gates admin routes on the signed role token. Missing cookie,
// bad signature and wrong role all produce the same response so the caller
// learns nothing about which check failed.
func (h *Handler) adminIdentity(c *gin.Context) {
	token, err := c.Cookie(tokenCookie)
	if err != nil || token == "" {
		h.unauthorized(c)
		return
	}

	claims, err := h.tokenManager.Parse(token)
	if err != nil {
		h.unauthorized(c)
		return
	}

	if claims.Role != "admin" {
		h.unauthorized(c)
		return
	}

	c.Next()
}

func (h *Handler) unauthorized(c *gin.Context) {
	failResponse(c, "Unauthorized")
	c.Abort()
}
