package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}

// ErrorResponse writes the standard error envelope and stops the chain.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
	})
}
