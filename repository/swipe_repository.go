package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

type SwipeRepository struct {
	collection *mongo.Collection
}

func NewSwipeRepository(db *mongo.Database) *SwipeRepository {
	return &SwipeRepository{collection: db.Collection("swipes")}
}

func (r *SwipeRepository) Create(ctx context.Context, swipe *models.Swipe) error {
	_, err := r.collection.InsertOne(ctx, swipe)
	return err
}

func (r *SwipeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *SwipeRepository) CountLikesByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "is_like": true})
}

func (r *SwipeRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

type MatchRepository struct {
	collection *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{collection: db.Collection("matches")}
}

func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	_, err := r.collection.InsertOne(ctx, match)
	return err
}

// FindByUser returns the user's matches, newest first.
func (r *MatchRepository) FindByUser(ctx context.Context, userID string) ([]models.Match, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err = cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *MatchRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
