package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every failure:
// {"error": {"message": "...", "status": 400, "details": {...}}}
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// Error writes an error response without aborting the handler chain.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": ErrorBody{Message: message, Status: status, Details: details}})
}

// AbortError writes an error response and stops middleware processing;
// used by the auth gate so the underlying handler never runs.
func AbortError(c *gin.Context, status int, message string, details any) {
	c.AbortWithStatusJSON(status, gin.H{"error": ErrorBody{Message: message, Status: status, Details: details}})
}
