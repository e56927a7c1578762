package repository

import (
	"context"

	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// Create appends one immutable result document. There is no update path on
// this collection by design.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]models.Result, error) {
	return r.find(ctx, bson.M{})
}

func (r *ResultRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, nil
	}
	return r.find(ctx, bson.M{"quiz_id": objID})
}

func (r *ResultRepository) FindRecent(ctx context.Context, limit int64) ([]models.Result, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetLimit(limit)
	return r.findWith(ctx, bson.M{}, opts)
}

func (r *ResultRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

// find returns documents in insertion order; callers layer their own
// ordering on top so tie-breaking stays stable.
func (r *ResultRepository) find(ctx context.Context, filter bson.M) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.findWith(ctx, filter, opts)
}

func (r *ResultRepository) findWith(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}
