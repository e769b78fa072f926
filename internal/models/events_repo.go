package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsColName = "events"

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (primitive.ObjectID, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ReplaceEvent(ctx context.Context, id primitive.ObjectID, event *Event) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (primitive.ObjectID, error) {
	return mdb.insertDoc(ctx, EventsColName, event)
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events := []*Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) ReplaceEvent(ctx context.Context, id primitive.ObjectID, event *Event) error {
	return mdb.replaceDoc(ctx, EventsColName, id, event)
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return mdb.deleteDoc(ctx, EventsColName, id)
}
