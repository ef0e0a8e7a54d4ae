package response

import "github.com/gin-gonic/gin"

// ErrorBody is the client-facing error shape: a human-readable message
// plus optional per-field details for validation failures.
type ErrorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error writes an error response with the given status.
func Error(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, ErrorBody{Message: message, Details: details})
}

// AbortError writes the error response and aborts the handler chain;
// for use in middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
