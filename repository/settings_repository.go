package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// SettingsRepository manages the platform-config (API keys) and
// algorithm-settings collections.
type SettingsRepository struct {
	platformConfig    *mongo.Collection
	algorithmSettings *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		platformConfig:    db.Collection("platform-config"),
		algorithmSettings: db.Collection("algorithm-settings"),
	}
}

func (r *SettingsRepository) SetConfig(ctx context.Context, entry *models.ConfigEntry) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.platformConfig.ReplaceOne(ctx, bson.M{"_id": entry.Key}, entry, opts)
	return err
}

func (r *SettingsRepository) ListConfig(ctx context.Context) ([]models.ConfigEntry, error) {
	cursor, err := r.platformConfig.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ConfigEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SettingsRepository) SetAlgorithmSetting(ctx context.Context, setting *models.AlgorithmSetting) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.algorithmSettings.ReplaceOne(ctx, bson.M{"_id": setting.Key}, setting, opts)
	return err
}

func (r *SettingsRepository) ListAlgorithmSettings(ctx context.Context) ([]models.AlgorithmSetting, error) {
	cursor, err := r.algorithmSettings.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.AlgorithmSetting
	if err = cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
