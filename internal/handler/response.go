package handler

import (
	"log"
	"net/http"
	"strconv"

	"soundlink/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ConfirmationResponse represents a simple success acknowledgement.
type ConfirmationResponse struct {
	Message string `json:"message" example:"OK"`
}

// currentUserID returns the caller identity set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}

// parseIDParam parses a numeric path parameter, responding 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error onto its HTTP status. Unknown errors
// are logged and reported as a generic internal failure so storage details
// never reach the client.
func respondError(c *gin.Context, err error) {
	status, known := service.StatusOf(err)
	if !known {
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
