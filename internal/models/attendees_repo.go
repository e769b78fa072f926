package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const AttendeesColName = "attendees"

type AttendeesRepo interface {
	CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error)
	ListAttendees(ctx context.Context) ([]*Attendee, error)
	ReplaceAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error
	DeleteAttendee(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error) {
	return mdb.insertDoc(ctx, AttendeesColName, attendee)
}

func (mdb *MongodbRepo) ListAttendees(ctx context.Context) ([]*Attendee, error) {
	col, err := mdb.GetCollection(AttendeesColName)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	attendees := []*Attendee{}
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, fmt.Errorf("failed to decode attendees: %w", err)
	}
	return attendees, nil
}

func (mdb *MongodbRepo) ReplaceAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error {
	return mdb.replaceDoc(ctx, AttendeesColName, id, attendee)
}

func (mdb *MongodbRepo) DeleteAttendee(ctx context.Context, id primitive.ObjectID) error {
	return mdb.deleteDoc(ctx, AttendeesColName, id)
}
