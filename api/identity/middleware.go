package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/maze-registry/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authorize returns middleware that rejects requests without a valid
// bearer token and attaches the token's claims to the request context.
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

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user's ID from the claims the
// Authorize middleware stored on the context.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get(ContextUserClaims)
	if !exists {
		return uuid.Nil, errors.New("no user claims on request")
	}

	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed user claims")
	}

	raw, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("user ID claim missing")
	}

	return uuid.Parse(raw)
}
