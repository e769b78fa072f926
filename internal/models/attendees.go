package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attendee struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name  string `bson:"name" json:"name" binding:"required" validate:"required"`
	Email string `bson:"email" json:"email" binding:"required" validate:"required"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}
