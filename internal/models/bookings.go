package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// event_id and attendee_id are opaque references, never checked
	// against the events or attendees collections.
	EventId    string `bson:"event_id" json:"event_id" binding:"required" validate:"required"`
	AttendeeId string `bson:"attendee_id" json:"attendee_id" binding:"required" validate:"required"`
	TicketType string `bson:"ticket_type" json:"ticket_type" binding:"required" validate:"required"`
	Quantity   int    `bson:"quantity" json:"quantity" binding:"required" validate:"required"`
}
