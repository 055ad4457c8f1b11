package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/admission"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, admission.ErrRoomOccupied):
		return http.StatusConflict
	case admission.IsRejection(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal error", "reason": admission.Reason(err)})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "reason": admission.Reason(err)})
}
