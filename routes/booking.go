package routes

import (
	"github.com/gin-gonic/gin"

	"qport/handlers"
)

// RegisterDemoRoutes registers the demo-booking endpoints.
func RegisterDemoRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, slotsHandler *handlers.SlotsHandler) {
	api := r.Group("/api")
	{
		api.POST("/book-demo", bookingHandler.BookDemo)
		api.GET("/demo-slots", slotsHandler.GetSlots)
	}
}
