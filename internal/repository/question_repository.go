package repository

import (
	"context"

	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// FindByQuiz returns the quiz's questions in insertion order. ObjectIDs are
// time-ordered, so sorting on _id keeps the storage order stable.
func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": objID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var question models.Question
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, question *models.Question) (*models.Question, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	update := bson.M{"$set": bson.M{
		"question_text":  question.QuestionText,
		"options":        question.Options,
		"correct_answer": question.CorrectAnswer,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Question
	if err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByQuiz sweeps all questions belonging to a quiz. Deleting nothing is
// not an error; the cascade is retryable.
func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID string) error {
	objID, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil
	}
	_, err = r.Col.DeleteMany(ctx, bson.M{"quiz_id": objID})
	return err
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
