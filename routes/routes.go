package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"qport/handlers"
	"qport/utils"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, slotsHandler *handlers.SlotsHandler) {
	// The widget posts cross-origin from the marketing pages.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Wrong-method requests must advertise what the endpoint accepts.
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	RegisterDemoRoutes(r, bookingHandler, slotsHandler)
	RegisterHealthRoute(r)
}

// allowedMethods maps each registered path to its Allow header value.
var allowedMethods = map[string]string{
	"/api/book-demo":  "POST",
	"/api/demo-slots": "GET",
	"/health":         "GET",
}

func methodNotAllowed(c *gin.Context) {
	if allow, ok := allowedMethods[c.Request.URL.Path]; ok {
		c.Header("Allow", allow)
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
