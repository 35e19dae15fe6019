package mongo

import (
	"context"
	"errors"
	"regexp"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const catalogCollectionName = "exercises"

// mongoCatalogRepository implements repository.ExerciseCatalogRepository
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewMongoCatalogRepository creates the exercise catalog repository backed by MongoDB.
func NewMongoCatalogRepository(db *mongo.Database) repository.ExerciseCatalogRepository {
	return &mongoCatalogRepository{
		collection: db.Collection(catalogCollectionName),
	}
}

// List returns the whole catalog sorted by English title.
func (r *mongoCatalogRepository) List(ctx context.Context) ([]domain.ExerciseCatalogEntry, error) {
	return r.find(ctx, bson.M{})
}

// Search does a case-insensitive substring match over titles and aliases.
func (r *mongoCatalogRepository) Search(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"titleEn": pattern},
		bson.M{"titleZh": pattern},
		bson.M{"aliases": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *mongoCatalogRepository) find(ctx context.Context, filter bson.M) ([]domain.ExerciseCatalogEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "titleEn", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.ExerciseCatalogEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID retrieves a catalog entry by its ID.
func (r *mongoCatalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseCatalogEntry, error) {
	var entry domain.ExerciseCatalogEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpsertMany inserts entries keyed by English title, leaving existing ones untouched.
func (r *mongoCatalogRepository) UpsertMany(ctx context.Context, entries []domain.ExerciseCatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		if entry.ID == primitive.NilObjectID {
			entry.ID = primitive.NewObjectID()
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"titleEn": entry.TitleEn}).
			SetUpdate(bson.M{"$setOnInsert": entry}).
			SetUpsert(true))
	}
	_, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

// EnsureCatalogIndexes creates necessary indexes for the catalog collection.
func EnsureCatalogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "titleEn", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "titleEn", Value: "text"}, {Key: "titleZh", Value: "text"}, {Key: "aliases", Value: "text"}},
			Options: options.Index().SetName("catalog_text_search"),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
