package middleware

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	ierr "github.com/invora/invora/internal/errors"
)

// ErrorHandler converts errors recorded on the gin context into the
// wire format: a status code from the error's mark and a body of
// {"error": "<message>"}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status := ierr.HTTPStatusFromErr(err)
			c.JSON(status, gin.H{"error": getDisplayMessage(err)})
		}
	}
}

func getDisplayMessage(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		// Get the first non-empty hint - GetAllHints is post-order traversal
		for _, hint := range hints {
			if hint = strings.TrimSpace(hint); hint != "" {
				return hint
			}
		}
	}

	// a failure that carries no message gets the generic one
	return "Unknown error occurred"
}
