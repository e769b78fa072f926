package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PostersColName     = "event_posters"
	PromoVideosColName = "promo_videos"
	VenuePhotosColName = "venue_photos"
)

// Attachment is a binary file stored against an event or venue. OwnerId is
// an opaque reference; nothing checks that the owning document exists.
type Attachment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerId     string             `bson:"owner_id" json:"owner_id"`
	Filename    string             `bson:"filename" json:"filename"`
	ContentType string             `bson:"content_type" json:"content_type"`
	Content     []byte             `bson:"content" json:"-"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}
