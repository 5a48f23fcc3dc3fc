package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"qport/models"
	"qport/services/booking"
	"qport/utils"
)

// BookingHandler exposes the demo-booking endpoints.
type BookingHandler struct {
	Service booking.DemoBookingService
}

// NewBookingHandler creates a handler backed by the given service.
func NewBookingHandler(svc booking.DemoBookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookDemo handles POST /api/book-demo.
func (h *BookingHandler) BookDemo(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body.", err.Error())
		return
	}

	resp, err := h.Service.BookDemo(c.Request.Context(), req)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			switch be.Code {
			case booking.CodeValidation:
				c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
			case booking.CodeDispatch:
				c.JSON(http.StatusInternalServerError, gin.H{"error": be.Message})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			}
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, resp)
}
