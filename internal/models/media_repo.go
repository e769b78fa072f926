package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MediaRepo interface {
	SaveAttachment(ctx context.Context, colName string, attachment *Attachment) (primitive.ObjectID, error)
	LatestAttachment(ctx context.Context, colName string, ownerId string) (*Attachment, error)
}

func (mdb *MongodbRepo) SaveAttachment(ctx context.Context, colName string, attachment *Attachment) (primitive.ObjectID, error) {
	return mdb.insertDoc(ctx, colName, attachment)
}

// LatestAttachment returns the most recently uploaded attachment for the
// owner. Several attachments may share an owner_id; the newest one wins.
func (mdb *MongodbRepo) LatestAttachment(ctx context.Context, colName string, ownerId string) (*Attachment, error) {
	col, err := mdb.GetCollection(colName)
	if err != nil {
		return nil, err
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	var attachment Attachment
	err = col.FindOne(ctx, bson.M{"owner_id": ownerId}, opts).Decode(&attachment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find attachment in %s: %w", colName, err)
	}
	return &attachment, nil
}
