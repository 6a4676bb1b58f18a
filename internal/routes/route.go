package routes

import (
	"github.com/eventdesk/server/internal/container"
	"github.com/eventdesk/server/internal/handlers"
	"github.com/eventdesk/server/internal/middleware"
	"github.com/eventdesk/server/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(ctn *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(ctn.Logger))
	r.Use(middleware.ErrorHandler(ctn.Logger))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	root := r.Group("/")

	handlers.Register(root, "events", &handlers.Resource[models.Event]{Name: "Event", Store: ctn.Store.Events})
	handlers.Register(root, "attendees", &handlers.Resource[models.Attendee]{Name: "Attendee", Store: ctn.Store.Attendees})
	handlers.Register(root, "venues", &handlers.Resource[models.Venue]{Name: "Venue", Store: ctn.Store.Venues})
	handlers.Register(root, "bookings", &handlers.Resource[models.Booking]{Name: "Booking", Store: ctn.Store.Bookings})

	handlers.RegisterFiles(root, "upload_event_poster", "event_poster", "event_id", &handlers.FileResource{
		Label:         "Event poster",
		NotFoundLabel: "Poster",
		Store:         ctn.Store.EventPosters,
	})
	handlers.RegisterFiles(root, "upload_promo_video", "promo_video", "event_id", &handlers.FileResource{
		Label: "Promo video",
		Store: ctn.Store.PromoVideos,
	})
	handlers.RegisterFiles(root, "upload_venue_photo", "venue_photo", "venue_id", &handlers.FileResource{
		Label: "Venue photo",
		Store: ctn.Store.VenuePhotos,
	})

	return r
}
