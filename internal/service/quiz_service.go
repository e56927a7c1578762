package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"
)

type QuizService struct {
	Quizzes   QuizStore
	Questions QuestionStore
}

func NewQuizService(quizzes QuizStore, questions QuestionStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Questions: questions}
}

func (s *QuizService) ListActive(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := s.Quizzes.FindActive(ctx)
	if err != nil {
		return nil, apperr.NewStorage("list quizzes", err)
	}
	return quizzes, nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperr.NewNotFound("quiz", id)
		}
		return nil, apperr.NewStorage("get quiz", err)
	}
	return quiz, nil
}

func (s *QuizService) Create(ctx context.Context, quiz *models.Quiz) error {
	if err := validateQuiz(quiz); err != nil {
		return err
	}
	now := time.Now().UTC()
	quiz.IsActive = true
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return apperr.NewStorage("create quiz", err)
	}
	return nil
}

func (s *QuizService) Update(ctx context.Context, id string, quiz *models.Quiz) (*models.Quiz, error) {
	if err := validateQuiz(quiz); err != nil {
		return nil, err
	}
	quiz.UpdatedAt = time.Now().UTC()
	updated, err := s.Quizzes.Update(ctx, id, quiz)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperr.NewNotFound("quiz", id)
		}
		return nil, apperr.NewStorage("update quiz", err)
	}
	return updated, nil
}

// Delete removes the quiz and sweeps its questions. The two steps are not
// transactional: if the sweep fails the quiz is already gone, the error is
// surfaced as a storage failure, and a retry runs the sweep alone. Historical
// results referencing the quiz are left intact.
func (s *QuizService) Delete(ctx context.Context, id string) error {
	if err := s.Quizzes.Delete(ctx, id); err != nil {
		if isNoDocuments(err) {
			return apperr.NewNotFound("quiz", id)
		}
		return apperr.NewStorage("delete quiz", err)
	}
	if err := s.Questions.DeleteByQuiz(ctx, id); err != nil {
		return apperr.NewStorage("delete quiz questions", err)
	}
	return nil
}

func validateQuiz(quiz *models.Quiz) error {
	var fields []string
	quiz.Title = strings.TrimSpace(quiz.Title)
	quiz.Description = strings.TrimSpace(quiz.Description)
	quiz.Category = strings.TrimSpace(quiz.Category)

	// Limits are in characters, not bytes.
	if quiz.Title == "" || utf8.RuneCountInString(quiz.Title) > models.MaxQuizTitleLen {
		fields = append(fields, "title")
	}
	if quiz.Description == "" || utf8.RuneCountInString(quiz.Description) > models.MaxQuizDescriptionLen {
		fields = append(fields, "description")
	}
	if quiz.Category == "" || utf8.RuneCountInString(quiz.Category) > models.MaxQuizCategoryLen {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return apperr.NewValidation("invalid quiz", fields...)
	}
	return nil
}
