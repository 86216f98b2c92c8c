package delivery

import (
	"strings"

	authdomain "gauth-backend/internal/auth/domain"
	"gauth-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			writeError(c, authdomain.Unauthorized())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			writeError(c, authdomain.Unauthorized())
			return
		}

		user, err := authUsecase.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
