package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name         string `bson:"name" json:"name" binding:"required" validate:"required"`
	Description  string `bson:"description" json:"description" binding:"required" validate:"required"`
	Date         string `bson:"date" json:"date" binding:"required" validate:"required"` // free-form, not parsed
	VenueId      string `bson:"venue_id" json:"venue_id" binding:"required" validate:"required"`
	MaxAttendees int    `bson:"max_attendees" json:"max_attendees" binding:"required" validate:"required"`
}
