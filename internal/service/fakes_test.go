package service

import (
	"context"
	"time"

	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stores backing the service tests.

type memQuizStore struct {
	quizzes []models.Quiz
}

func (m *memQuizStore) FindActive(ctx context.Context) ([]models.Quiz, error) {
	var out []models.Quiz
	for i := len(m.quizzes) - 1; i >= 0; i-- {
		if m.quizzes[i].IsActive {
			out = append(out, m.quizzes[i])
		}
	}
	return out, nil
}

func (m *memQuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	for i := range m.quizzes {
		if m.quizzes[i].ID.Hex() == id {
			q := m.quizzes[i]
			return &q, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memQuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	m.quizzes = append(m.quizzes, *quiz)
	return nil
}

func (m *memQuizStore) Update(ctx context.Context, id string, quiz *models.Quiz) (*models.Quiz, error) {
	for i := range m.quizzes {
		if m.quizzes[i].ID.Hex() == id {
			m.quizzes[i].Title = quiz.Title
			m.quizzes[i].Description = quiz.Description
			m.quizzes[i].Category = quiz.Category
			m.quizzes[i].IsActive = quiz.IsActive
			m.quizzes[i].UpdatedAt = quiz.UpdatedAt
			updated := m.quizzes[i]
			return &updated, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memQuizStore) Delete(ctx context.Context, id string) error {
	for i := range m.quizzes {
		if m.quizzes[i].ID.Hex() == id {
			m.quizzes = append(m.quizzes[:i], m.quizzes[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *memQuizStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.quizzes)), nil
}

type memQuestionStore struct {
	questions []models.Question
}

func (m *memQuestionStore) FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range m.questions {
		if q.QuizID.Hex() == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	for i := range m.questions {
		if m.questions[i].ID.Hex() == id {
			q := m.questions[i]
			return &q, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memQuestionStore) Create(ctx context.Context, question *models.Question) error {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	m.questions = append(m.questions, *question)
	return nil
}

func (m *memQuestionStore) Update(ctx context.Context, id string, question *models.Question) (*models.Question, error) {
	for i := range m.questions {
		if m.questions[i].ID.Hex() == id {
			m.questions[i].QuestionText = question.QuestionText
			m.questions[i].Options = question.Options
			m.questions[i].CorrectAnswer = question.CorrectAnswer
			updated := m.questions[i]
			return &updated, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memQuestionStore) Delete(ctx context.Context, id string) error {
	for i := range m.questions {
		if m.questions[i].ID.Hex() == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *memQuestionStore) DeleteByQuiz(ctx context.Context, quizID string) error {
	kept := m.questions[:0]
	for _, q := range m.questions {
		if q.QuizID.Hex() != quizID {
			kept = append(kept, q)
		}
	}
	m.questions = kept
	return nil
}

func (m *memQuestionStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.questions)), nil
}

type memResultStore struct {
	results   []models.Result
	createErr error
}

func (m *memResultStore) Create(ctx context.Context, result *models.Result) error {
	if m.createErr != nil {
		return m.createErr
	}
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	m.results = append(m.results, *result)
	return nil
}

func (m *memResultStore) FindAll(ctx context.Context) ([]models.Result, error) {
	out := make([]models.Result, len(m.results))
	copy(out, m.results)
	return out, nil
}

func (m *memResultStore) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range m.results {
		if r.QuizID.Hex() == quizID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResultStore) FindRecent(ctx context.Context, limit int64) ([]models.Result, error) {
	out := make([]models.Result, len(m.results))
	copy(out, m.results)
	SortResults(out, SortByCompletedAt, true)
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memResultStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.results)), nil
}

type memAdminStore struct {
	admins []models.Admin
}

func (m *memAdminStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].Username == username {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memAdminStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].ID.Hex() == id {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memAdminStore) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *memAdminStore) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	for i := range m.admins {
		if m.admins[i].ID == id {
			m.admins[i].LastLogin = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (m *memAdminStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.admins)), nil
}

type memStatsCache struct {
	entries     map[string]models.QuizStats
	gets, sets  int
	invalidated int
}

func newMemStatsCache() *memStatsCache {
	return &memStatsCache{entries: map[string]models.QuizStats{}}
}

func (m *memStatsCache) Get(ctx context.Context, quizID string) (*models.QuizStats, bool) {
	m.gets++
	if stats, ok := m.entries[quizID]; ok {
		return &stats, true
	}
	return nil, false
}

func (m *memStatsCache) Set(ctx context.Context, quizID string, stats models.QuizStats) {
	m.sets++
	m.entries[quizID] = stats
}

func (m *memStatsCache) Invalidate(ctx context.Context, quizID string) {
	m.invalidated++
	delete(m.entries, quizID)
}
