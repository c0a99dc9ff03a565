package i

import "github.com/gin-gonic/gin"

// Controller mounts a group of handlers on the versioned API. Protected
// routes run behind the bearer-token middleware.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
