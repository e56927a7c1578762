package service

import (
	"context"
	"math"
	"time"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultService is the authoritative scoring boundary. Everything a client
// submits about its own attempt is treated as a hint: the percentage is
// always re-derived here, and whenever the quiz's question bank still exists
// the per-question correctness and the score are re-verified against it.
type ResultService struct {
	Results   ResultStore
	Questions QuestionStore
	Cache     StatsCache

	now func() time.Time
}

func NewResultService(results ResultStore, questions QuestionStore, cache StatsCache) *ResultService {
	return &ResultService{
		Results:   results,
		Questions: questions,
		Cache:     cache,
		now:       time.Now,
	}
}

// Submit validates, re-scores and persists one completed attempt, returning
// a compact confirmation. The stored record is immutable from here on.
func (s *ResultService) Submit(ctx context.Context, sub *models.ResultSubmission, clientIP string) (*models.ResultConfirmation, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	quizID, err := primitive.ObjectIDFromHex(sub.QuizID)
	if err != nil {
		return nil, apperr.NewValidation("invalid submission", "quizId")
	}

	score := *sub.Score
	total := *sub.TotalQuestions
	answers := sub.Answers

	// Re-verify against the live question bank when it is still there. A
	// deleted quiz leaves nothing to check against, so the submitted detail
	// stands in that case.
	if bank, bankErr := s.Questions.FindByQuiz(ctx, sub.QuizID); bankErr == nil && len(bank) > 0 {
		answers, score = rescore(answers, bank)
		total = len(bank)
	}

	percentage := int(math.Round(float64(score) / float64(total) * 100))

	timeSpent := sub.TimeSpent
	if timeSpent < 0 {
		timeSpent = 0
	}
	events := sub.ScreenEvents
	if events == nil {
		events = []models.ScreenEvent{}
	}

	result := &models.Result{
		QuizID:         quizID,
		QuizTitle:      sub.QuizTitle,
		UserName:       sub.UserName,
		UserEmail:      sub.UserEmail,
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Answers:        answers,
		TimeSpent:      timeSpent,
		CompletedAt:    s.now().UTC(),
		IPAddress:      clientIP,
		ScreenEvents:   events,
	}

	if err := s.Results.Create(ctx, result); err != nil {
		return nil, apperr.NewStorage("save result", err)
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, sub.QuizID)
	}

	return &models.ResultConfirmation{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		CompletedAt:    result.CompletedAt,
	}, nil
}

// ListOptions filters and orders a result listing.
type ListOptions struct {
	QuizID string
	SortBy string // completedAt | score | percentage | userName
	Order  string // asc | desc
}

func (s *ResultService) List(ctx context.Context, opts ListOptions) ([]models.Result, error) {
	var (
		results []models.Result
		err     error
	)
	if opts.QuizID != "" {
		results, err = s.Results.FindByQuiz(ctx, opts.QuizID)
	} else {
		results, err = s.Results.FindAll(ctx)
	}
	if err != nil {
		return nil, apperr.NewStorage("list results", err)
	}

	key, err := ParseSortKey(opts.SortBy)
	if err != nil {
		return nil, err
	}
	SortResults(results, key, opts.Order != "asc")
	return results, nil
}

func validateSubmission(sub *models.ResultSubmission) error {
	var missing []string
	if sub.QuizID == "" {
		missing = append(missing, "quizId")
	}
	if sub.QuizTitle == "" {
		missing = append(missing, "quizTitle")
	}
	if sub.UserName == "" {
		missing = append(missing, "userName")
	}
	if sub.Score == nil {
		missing = append(missing, "score")
	}
	if sub.TotalQuestions == nil {
		missing = append(missing, "totalQuestions")
	}
	if len(sub.Answers) == 0 {
		missing = append(missing, "answers")
	}
	if len(missing) > 0 {
		return apperr.NewValidation("required fields are missing", missing...)
	}
	if *sub.Score < 0 {
		return apperr.NewValidation("invalid submission", "score")
	}
	if *sub.TotalQuestions < 1 {
		return apperr.NewValidation("invalid submission", "totalQuestions")
	}
	// Bounds the claimed values even when no question bank survives to
	// re-score against, keeping the derived percentage inside 0-100.
	if *sub.Score > *sub.TotalQuestions {
		return apperr.NewValidation("invalid submission", "score")
	}
	return nil
}

// rescore recomputes per-answer correctness and the aggregate score from the
// answer key. Unanswered selections (sentinel -1) are never correct.
func rescore(answers []models.AnswerDetail, bank []models.Question) ([]models.AnswerDetail, int) {
	key := make(map[primitive.ObjectID]int, len(bank))
	for _, q := range bank {
		key[q.ID] = q.CorrectAnswer
	}
	verified := make([]models.AnswerDetail, len(answers))
	score := 0
	for i, a := range answers {
		correct, known := key[a.QuestionID]
		a.IsCorrect = known && a.SelectedAnswer >= 0 && a.SelectedAnswer == correct
		if a.IsCorrect {
			score++
		}
		verified[i] = a
	}
	return verified, score
}
