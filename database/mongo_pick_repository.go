package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// MongoPickRepository implements pick persistence for MongoDB
type MongoPickRepository struct {
	collection *mongo.Collection
}

// NewMongoPickRepository creates a new MongoDB pick repository
func NewMongoPickRepository(db *MongoDB) *MongoPickRepository {
	collection := db.GetCollection("picks")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "game_id", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "season", Value: 1},
				{Key: "week", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "season", Value: 1},
			},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logging.Warnf("Could not create pick indexes: %v", err)
	}

	return &MongoPickRepository{collection: collection}
}

// Insert stores a new pick
func (r *MongoPickRepository) Insert(ctx context.Context, pick *models.Pick) error {
	result, err := r.collection.InsertOne(ctx, pick)
	if err != nil {
		return fmt.Errorf("failed to create pick: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		pick.ID = oid
	}
	return nil
}

// FindByGame retrieves all picks for a specific game, regardless of status
func (r *MongoPickRepository) FindByGame(ctx context.Context, gameID int) ([]*models.Pick, error) {
	return r.find(ctx, bson.M{"game_id": gameID}, nil)
}

// FindByWeek retrieves all picks for a specific season/week
func (r *MongoPickRepository) FindByWeek(ctx context.Context, season, week int) ([]*models.Pick, error) {
	return r.find(ctx, bson.M{"season": season, "week": week}, nil)
}

// FindByUserAndSeason retrieves all picks for a user in a specific season
func (r *MongoPickRepository) FindByUserAndSeason(ctx context.Context, userID, season int) ([]*models.Pick, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "week", Value: 1},
		{Key: "game_id", Value: 1},
	})
	return r.find(ctx, bson.M{"user_id": userID, "season": season}, opts)
}

// UpdateOutcome writes the settlement result of a pick. This is a $set, not
// an increment, so repeating it with the same inputs is idempotent.
func (r *MongoPickRepository) UpdateOutcome(ctx context.Context, pickID primitive.ObjectID, status models.PickStatus, points int, result string, payout *float64) error {
	set := bson.M{
		"status":     status,
		"points":     points,
		"result":     result,
		"updated_at": time.Now(),
	}
	if payout != nil {
		set["payout"] = *payout
	}

	update := bson.M{"$set": set}
	if payout == nil {
		update["$unset"] = bson.M{"payout": ""}
	}

	updateResult, err := r.collection.UpdateOne(ctx, bson.M{"_id": pickID}, update)
	if err != nil {
		return fmt.Errorf("failed to update pick outcome: %w", err)
	}
	if updateResult.MatchedCount == 0 {
		return fmt.Errorf("pick %s not found", pickID.Hex())
	}

	return nil
}

func (r *MongoPickRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Pick, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find picks: %w", err)
	}
	defer cursor.Close(ctx)

	var picks []*models.Pick
	for cursor.Next(ctx) {
		var pick models.Pick
		if err := cursor.Decode(&pick); err != nil {
			return nil, fmt.Errorf("failed to decode pick: %w", err)
		}
		picks = append(picks, &pick)
	}

	return picks, nil
}
