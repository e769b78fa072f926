package services

import (
	"context"
	"fmt"

	"github.com/eventdesk/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenuesService struct {
	venuesRepo models.VenuesRepo
}

func NewVenuesService(venuesRepo models.VenuesRepo) *VenuesService {
	return &VenuesService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenuesService) CreateVenue(ctx context.Context, venue *models.Venue) (string, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	id, err := vs.venuesRepo.CreateVenue(ctx, venue)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (vs *VenuesService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return vs.venuesRepo.ListVenues(ctx)
}

func (vs *VenuesService) UpdateVenue(ctx context.Context, id string, venue *models.Venue) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	if err := models.Validate.Struct(venue); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return vs.venuesRepo.ReplaceVenue(ctx, oid, venue)
}

func (vs *VenuesService) DeleteVenue(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return vs.venuesRepo.DeleteVenue(ctx, oid)
}
