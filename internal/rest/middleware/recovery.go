package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryHandler answers a recovered handler panic in the same wire
// shape the error handler uses. Panics carry no caller-safe message,
// so the body is always the generic one.
func RecoveryHandler(c *gin.Context, err any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unknown error occurred"})
}
