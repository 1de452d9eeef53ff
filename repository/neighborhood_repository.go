package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// NeighborhoodRepository manages the admin-editable neighborhoods collection.
// The swipe deck does not read from here; it uses the static catalog.
type NeighborhoodRepository struct {
	collection *mongo.Collection
}

func NewNeighborhoodRepository(db *mongo.Database) *NeighborhoodRepository {
	return &NeighborhoodRepository{collection: db.Collection("neighborhoods")}
}

func (r *NeighborhoodRepository) FindAll(ctx context.Context) ([]models.Neighborhood, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var neighborhoods []models.Neighborhood
	if err = cursor.All(ctx, &neighborhoods); err != nil {
		return nil, err
	}
	return neighborhoods, nil
}

// Upsert writes a neighborhood document keyed by its ID.
func (r *NeighborhoodRepository) Upsert(ctx context.Context, n *models.Neighborhood) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": n.ID}, n, opts)
	return err
}

func (r *NeighborhoodRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *NeighborhoodRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the given neighborhoods if the collection is empty.
func (r *NeighborhoodRepository) Seed(ctx context.Context, neighborhoods []models.Neighborhood) error {
	count, err := r.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	docs := make([]interface{}, 0, len(neighborhoods))
	for i := range neighborhoods {
		docs = append(docs, neighborhoods[i])
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
