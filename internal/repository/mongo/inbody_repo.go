package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const inBodyCollectionName = "in_body_data"

type mongoInBodyRepository struct {
	collection *mongo.Collection
}

// NewMongoInBodyRepository creates a repository for body-composition records.
func NewMongoInBodyRepository(db *mongo.Database) repository.InBodyRepository {
	return &mongoInBodyRepository{
		collection: db.Collection(inBodyCollectionName),
	}
}

func (r *mongoInBodyRepository) Create(ctx context.Context, record *domain.InBodyRecord) (primitive.ObjectID, error) {
	if record.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("record requires a uid")
	}
	record.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted record ID")
	}
	return insertedID, nil
}

func (r *mongoInBodyRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.InBodyRecord, error) {
	var record domain.InBodyRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "uid": userID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByUser returns every record of the user ordered by reportDate, newest first.
func (r *mongoInBodyRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "reportDate", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"uid": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.InBodyRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Replace overwrites the record. The scan reference survives a replacement
// since clients never see the object key.
func (r *mongoInBodyRepository) Replace(ctx context.Context, record *domain.InBodyRecord) error {
	if record.ID == primitive.NilObjectID {
		return errors.New("record ID is required for replace")
	}

	existing, err := r.GetByID(ctx, record.UserID, record.ID)
	if err != nil {
		return err
	}
	record.CreatedAt = existing.CreatedAt
	record.ScanObjectKey = existing.ScanObjectKey
	record.ScanContentType = existing.ScanContentType
	record.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID, "uid": record.UserID}, record)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoInBodyRepository) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "uid": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetScan records the object key of the uploaded report scan.
func (r *mongoInBodyRepository) SetScan(ctx context.Context, userID, id primitive.ObjectID, objectKey, contentType string) error {
	update := bson.M{
		"$set": bson.M{
			"scanObjectKey":   objectKey,
			"scanContentType": contentType,
			"updatedAt":       time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "uid": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureInBodyIndexes creates necessary indexes. Call during startup.
func EnsureInBodyIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "reportDate", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
