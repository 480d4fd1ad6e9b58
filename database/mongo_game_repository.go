package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// MongoGameRepository implements game persistence for MongoDB
type MongoGameRepository struct {
	collection *mongo.Collection
}

// NewMongoGameRepository creates a new MongoDB game repository
func NewMongoGameRepository(db *MongoDB) *MongoGameRepository {
	collection := db.GetCollection("games")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "season", Value: 1},
				{Key: "week", Value: 1},
			},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logging.Warnf("Could not create game indexes: %v", err)
	}

	return &MongoGameRepository{collection: collection}
}

// FindByID retrieves a game by its numeric id, nil if not found
func (r *MongoGameRepository) FindByID(ctx context.Context, gameID int) (*models.Game, error) {
	var game models.Game
	err := r.collection.FindOne(ctx, bson.M{"id": gameID}).Decode(&game)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game by ID: %w", err)
	}
	return &game, nil
}

// FindByWeek retrieves all games for a season/week
func (r *MongoGameRepository) FindByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	return r.find(ctx, bson.M{"season": season, "week": week})
}

// FindBySeason retrieves all games for a season
func (r *MongoGameRepository) FindBySeason(ctx context.Context, season int) ([]*models.Game, error) {
	return r.find(ctx, bson.M{"season": season})
}

// Upsert writes a game keyed by its numeric id
func (r *MongoGameRepository) Upsert(ctx context.Context, game *models.Game) error {
	filter := bson.M{"id": game.ID}
	update := bson.M{"$set": game}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert game %d: %w", game.ID, err)
	}
	return nil
}

func (r *MongoGameRepository) find(ctx context.Context, filter bson.M) ([]*models.Game, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "week", Value: 1},
		{Key: "date", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find games: %w", err)
	}
	defer cursor.Close(ctx)

	var games []*models.Game
	for cursor.Next(ctx) {
		var game models.Game
		if err := cursor.Decode(&game); err != nil {
			return nil, fmt.Errorf("failed to decode game: %w", err)
		}
		games = append(games, &game)
	}

	return games, nil
}
