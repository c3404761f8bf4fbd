package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the public and protected route
// groups of the API.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
