package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const VenuesColName = "venues"

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	ReplaceVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error) {
	return mdb.insertDoc(ctx, VenuesColName, venue)
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context) ([]*Venue, error) {
	col, err := mdb.GetCollection(VenuesColName)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	venues := []*Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) ReplaceVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error {
	return mdb.replaceDoc(ctx, VenuesColName, id, venue)
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	return mdb.deleteDoc(ctx, VenuesColName, id)
}
