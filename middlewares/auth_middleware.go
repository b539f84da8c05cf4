package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/models"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves it to an existing
// user. A valid token for a vanished account is still a 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		if os.Getenv("JWT_SECRET") == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
