package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

type EventsService interface {
	CreateEvent(ctx context.Context, event *models.Event) (string, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id string, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type AttendeesService interface {
	CreateAttendee(ctx context.Context, attendee *models.Attendee) (string, error)
	ListAttendees(ctx context.Context) ([]*models.Attendee, error)
	UpdateAttendee(ctx context.Context, id string, attendee *models.Attendee) error
	DeleteAttendee(ctx context.Context, id string) error
}

type VenuesService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (string, error)
	ListVenues(ctx context.Context) ([]*models.Venue, error)
	UpdateVenue(ctx context.Context, id string, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id string) error
}

type BookingsService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id string) error
}

type MediaService interface {
	Upload(ctx context.Context, ownerId, filename, contentType string, content []byte) (string, error)
	Download(ctx context.Context, ownerId string) (*models.Attachment, error)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// trimParam normalizes a path parameter: clients sometimes pass ids wrapped
// in quotes or with stray whitespace.
func trimParam(c *gin.Context, name string) string {
	value := strings.TrimSpace(c.Param(name))
	return strings.Trim(value, "\"'")
}
