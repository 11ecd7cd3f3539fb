// Package auth gates the admin surface behind a static shared token.
// There are no user accounts: the token is a single server-configured
// secret compared byte-for-byte against the X-Admin-Token header.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the admin secret on mutating catalog requests.
const TokenHeader = "X-Admin-Token"

// AdminToken rejects any request whose token does not match the
// configured secret. An empty configured secret rejects everything:
// otherwise a request with no header would match it.
func AdminToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		token := c.GetHeader(TokenHeader)
		if token != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
