package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the API surface.
func SetupRouter(
	rc *controllers.RoomController,
	cc *controllers.CheckoutController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}

		api.GET("/room-types", rc.GetRoomTypes)

		checkout := api.Group("/checkout")
		{
			checkout.GET("/quote", cc.GetQuote)
			checkout.POST("", cc.SubmitPayment)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:bookingId", bc.GetBookingByID)
		}
	}

	return r
}
