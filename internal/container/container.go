package container

import (
	"log/slog"

	"github.com/eventdesk/api/internal/models"
	"github.com/eventdesk/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	// Database client
	MongoDBClient *mongo.Client

	EventsService    *services.EventsService
	AttendeesService *services.AttendeesService
	VenuesService    *services.VenuesService
	BookingsService  *services.BookingsService

	// One media service per attachment collection
	PostersService     *services.MediaService
	PromoVideosService *services.MediaService
	VenuePhotosService *services.MediaService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string) *Container {
	// Initialize repository
	repo := models.MongodbNewRepo(mongoDBClient, dbName)

	return &Container{
		Logger:             logger,
		MongoDBClient:      mongoDBClient,
		EventsService:      services.NewEventsService(repo),
		AttendeesService:   services.NewAttendeesService(repo),
		VenuesService:      services.NewVenuesService(repo),
		BookingsService:    services.NewBookingsService(repo),
		PostersService:     services.NewMediaService(repo, models.PostersColName),
		PromoVideosService: services.NewMediaService(repo, models.PromoVideosColName),
		VenuePhotosService: services.NewMediaService(repo, models.VenuePhotosColName),
	}
}
