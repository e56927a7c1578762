package service

import (
	"context"
	"errors"
	"time"

	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store contracts consumed by the services. The Mongo repositories satisfy
// them; tests use in-memory fakes.

type QuizStore interface {
	FindActive(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Update(ctx context.Context, id string, quiz *models.Quiz) (*models.Quiz, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type QuestionStore interface {
	FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, id string, question *models.Question) (*models.Question, error)
	Delete(ctx context.Context, id string) error
	DeleteByQuiz(ctx context.Context, quizID string) error
	Count(ctx context.Context) (int64, error)
}

type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	FindAll(ctx context.Context) ([]models.Result, error)
	FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error)
	FindRecent(ctx context.Context, limit int64) ([]models.Result, error)
	Count(ctx context.Context) (int64, error)
}

type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

// StatsCache is an optional read-through cache for quiz statistics.
type StatsCache interface {
	Get(ctx context.Context, quizID string) (*models.QuizStats, bool)
	Set(ctx context.Context, quizID string, stats models.QuizStats)
	Invalidate(ctx context.Context, quizID string)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
