package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Venue struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name     string `bson:"name" json:"name" binding:"required" validate:"required"`
	Address  string `bson:"address" json:"address" binding:"required" validate:"required"`
	Capacity int    `bson:"capacity" json:"capacity" binding:"required" validate:"required"`
}
