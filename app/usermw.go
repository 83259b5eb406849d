package app

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user's identity. It is trusted as-is; the
// gateway is the only party expected to set it.
const HeaderUserID = "X-Sharer-User-Id"

const ctxUserID = "userID"

// RequireUser rejects requests without a parseable identity header.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader(HeaderUserID), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, H{"error": "missing or invalid " + HeaderUserID + " header"})
			return
		}
		c.Set(ctxUserID, id)
		c.Next()
	}
}

// OptionalUser records the identity when present and lets the request through
// either way. Used where anonymous reads are allowed.
func OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := strconv.ParseInt(c.GetHeader(HeaderUserID), 10, 64); err == nil {
			c.Set(ctxUserID, id)
		}
		c.Next()
	}
}

// UserID returns the identity set by the middleware; ok is false on routes
// using OptionalUser when no header was sent.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
