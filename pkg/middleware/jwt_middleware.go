package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller's
// id and role in the request context. Authorization itself happens in
// the services; this layer only establishes identity.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

// ActorFromContext rebuilds the caller identity stored by
// JWTAuthMiddleware. Without a verified token it returns a zero actor,
// which fails every capability check downstream.
func ActorFromContext(c *gin.Context) auth.Actor {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return auth.Actor{}
	}
	return auth.Actor{
		ID:            id,
		Role:          db_models.Role(c.GetString("Role")),
		Authenticated: true,
	}
}
