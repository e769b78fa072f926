package services

import (
	"context"
	"fmt"

	"github.com/eventdesk/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventsService struct {
	eventsRepo models.EventsRepo
}

func NewEventsService(eventsRepo models.EventsRepo) *EventsService {
	return &EventsService{
		eventsRepo: eventsRepo,
	}
}

func (es *EventsService) CreateEvent(ctx context.Context, event *models.Event) (string, error) {
	if err := models.Validate.Struct(event); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	id, err := es.eventsRepo.CreateEvent(ctx, event)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (es *EventsService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

func (es *EventsService) UpdateEvent(ctx context.Context, id string, event *models.Event) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	if err := models.Validate.Struct(event); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return es.eventsRepo.ReplaceEvent(ctx, oid, event)
}

func (es *EventsService) DeleteEvent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return es.eventsRepo.DeleteEvent(ctx, oid)
}
