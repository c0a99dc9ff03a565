package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextExplorerClaims is the key used to store token claims in the Gin context.
	ContextExplorerClaims = "explorerClaims"
	// ContextExplorerID is the key used to store the caller's uuid.UUID in the Gin context.
	ContextExplorerID = "explorerID"
)

// Authorize rejects requests without a valid bearer token and stores the
// caller's claims and ID in the context.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		rawID, _ := claims["explorerID"].(string)
		explorerID, err := uuid.Parse(rawID)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextExplorerClaims, claims)
		c.Set(ContextExplorerID, explorerID)
		c.Next()
	}
}

// ExplorerID returns the ID stored by Authorize.
func ExplorerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextExplorerID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
