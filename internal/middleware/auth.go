package middleware

import (
	"strings"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/repository"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stashes the claims on the
// request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(strings.TrimPrefix(header, "Bearer "), cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// AdminMiddleware requires an admin role; must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil || claims.Role != model.Admin {
			util.Error(c, 403, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActivityMiddleware records last-seen off the request path.
func ActivityMiddleware(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			go users.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}
