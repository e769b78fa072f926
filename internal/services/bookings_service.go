package services

import (
	"context"
	"fmt"

	"github.com/eventdesk/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingsService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingsService(bookingsRepo models.BookingsRepo) *BookingsService {
	return &BookingsService{
		bookingsRepo: bookingsRepo,
	}
}

// CreateBooking never checks venue capacity or the event's max_attendees;
// bookings are plain records, not reservations.
func (bs *BookingsService) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	if err := models.Validate.Struct(booking); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	id, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (bs *BookingsService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingsRepo.ListBookings(ctx)
}

func (bs *BookingsService) UpdateBooking(ctx context.Context, id string, booking *models.Booking) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	if err := models.Validate.Struct(booking); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return bs.bookingsRepo.ReplaceBooking(ctx, oid, booking)
}

func (bs *BookingsService) DeleteBooking(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return bs.bookingsRepo.DeleteBooking(ctx, oid)
}
