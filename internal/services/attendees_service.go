package services

import (
	"context"
	"fmt"

	"github.com/eventdesk/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendeesService struct {
	attendeesRepo models.AttendeesRepo
}

func NewAttendeesService(attendeesRepo models.AttendeesRepo) *AttendeesService {
	return &AttendeesService{
		attendeesRepo: attendeesRepo,
	}
}

func (as *AttendeesService) CreateAttendee(ctx context.Context, attendee *models.Attendee) (string, error) {
	if err := models.Validate.Struct(attendee); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	id, err := as.attendeesRepo.CreateAttendee(ctx, attendee)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (as *AttendeesService) ListAttendees(ctx context.Context) ([]*models.Attendee, error) {
	return as.attendeesRepo.ListAttendees(ctx)
}

func (as *AttendeesService) UpdateAttendee(ctx context.Context, id string, attendee *models.Attendee) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	if err := models.Validate.Struct(attendee); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return as.attendeesRepo.ReplaceAttendee(ctx, oid, attendee)
}

func (as *AttendeesService) DeleteAttendee(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return as.attendeesRepo.DeleteAttendee(ctx, oid)
}
