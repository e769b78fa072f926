package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// ListLimit caps every collection listing. There is no pagination beyond it.
const ListLimit = 100

var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidID  = errors.New("invalid document id")
	ErrValidation = errors.New("validation failed")
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) insertDoc(ctx context.Context, colName string, doc interface{}) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(colName)
	if err != nil {
		return primitive.NilObjectID, err
	}
	result, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", colName, err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type for %s", colName)
	}
	return id, nil
}

// replaceDoc swaps out every field of the matched document. A zero matched
// count surfaces as ErrNotFound for all collections alike.
func (mdb *MongodbRepo) replaceDoc(ctx context.Context, colName string, id primitive.ObjectID, doc interface{}) error {
	col, err := mdb.GetCollection(colName)
	if err != nil {
		return err
	}
	result, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace document in %s: %w", colName, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) deleteDoc(ctx context.Context, colName string, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(colName)
	if err != nil {
		return err
	}
	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document in %s: %w", colName, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
