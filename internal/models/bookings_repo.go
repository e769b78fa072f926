package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BookingsColName = "bookings"

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (primitive.ObjectID, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	ReplaceBooking(ctx context.Context, id primitive.ObjectID, booking *Booking) error
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (primitive.ObjectID, error) {
	return mdb.insertDoc(ctx, BookingsColName, booking)
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, err
	}
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookings := []*Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) ReplaceBooking(ctx context.Context, id primitive.ObjectID, booking *Booking) error {
	return mdb.replaceDoc(ctx, BookingsColName, id, booking)
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	return mdb.deleteDoc(ctx, BookingsColName, id)
}
