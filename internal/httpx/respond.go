package httpx

import "github.com/gin-gonic/gin"

// HTTPError is the standard JSON error body.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, HTTPError{Error: msg})
}
