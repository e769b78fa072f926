package routes

import (
	"github.com/eventdesk/api/internal/container"
	"github.com/eventdesk/api/internal/handlers"
	"github.com/eventdesk/api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/", handlers.RedirectToDocs())
	r.GET("/docs", handlers.DocsPage())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "eventdesk-api",
		})
	})

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventsService))
		eventRoutes.GET("", handlers.ListEvents(container.EventsService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventsService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventsService))
	}

	attendeeRoutes := r.Group("/attendees")
	{
		attendeeRoutes.POST("", handlers.CreateAttendee(container.AttendeesService))
		attendeeRoutes.GET("", handlers.ListAttendees(container.AttendeesService))
		attendeeRoutes.PUT("/:id", handlers.UpdateAttendee(container.AttendeesService))
		attendeeRoutes.DELETE("/:id", handlers.DeleteAttendee(container.AttendeesService))
	}

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.POST("", handlers.CreateVenue(container.VenuesService))
		venueRoutes.GET("", handlers.ListVenues(container.VenuesService))
		venueRoutes.PUT("/:id", handlers.UpdateVenue(container.VenuesService))
		venueRoutes.DELETE("/:id", handlers.DeleteVenue(container.VenuesService))
	}

	bookingRoutes := r.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingsService))
		bookingRoutes.GET("", handlers.ListBookings(container.BookingsService))
		bookingRoutes.PUT("/:id", handlers.UpdateBooking(container.BookingsService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingsService))
	}

	// Media routes keep the original flat paths rather than nesting under the
	// owning resource.
	r.POST("/upload_event_poster/:event_id", handlers.UploadMedia(container.PostersService, "event_id", "Event poster uploaded"))
	r.GET("/get_poster/:event_id", handlers.DownloadMedia(container.PostersService, "event_id", "File not found"))

	r.POST("/upload_promo_video/:event_id", handlers.UploadMedia(container.PromoVideosService, "event_id", "Promotional video uploaded"))
	r.GET("/get_promo_video/:event_id", handlers.DownloadMedia(container.PromoVideosService, "event_id", "Promotional video not found"))

	r.POST("/upload_venue_photo/:venue_id", handlers.UploadMedia(container.VenuePhotosService, "venue_id", "Venue photo uploaded"))
	r.GET("/get_venue_photo/:venue_id", handlers.DownloadMedia(container.VenuePhotosService, "venue_id", "Venue photo not found"))

	return r
}
