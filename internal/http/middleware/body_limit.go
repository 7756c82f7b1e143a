package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FormBodyLimit caps the size of submitted form bodies. GETs pass through
// untouched.
func FormBodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
