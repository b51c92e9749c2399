package middleware

import (
	"TandoorMate/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer conversation token and stores the
// conversation id on the context for the controllers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Missing conversation token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		conversationID, err := utils.ParseConversationToken(tokenString)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid conversation token")
			return
		}

		c.Set("conversationId", conversationID)
		c.Next()
	}
}
