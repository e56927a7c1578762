package service

import (
	"context"
	"time"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"
)

type QuestionService struct {
	Questions QuestionStore
	Quizzes   QuizStore
}

func NewQuestionService(questions QuestionStore, quizzes QuizStore) *QuestionService {
	return &QuestionService{Questions: questions, Quizzes: quizzes}
}

func (s *QuestionService) ListByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	questions, err := s.Questions.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, apperr.NewStorage("list questions", err)
	}
	return questions, nil
}

// Create validates the question and verifies the parent quiz exists before
// any write.
func (s *QuestionService) Create(ctx context.Context, question *models.Question) error {
	if question.QuizID.IsZero() {
		return apperr.NewValidation("invalid question", "quizId")
	}
	if err := question.Validate(); err != nil {
		return err
	}
	if _, err := s.Quizzes.FindByID(ctx, question.QuizID.Hex()); err != nil {
		if isNoDocuments(err) {
			return apperr.NewNotFound("quiz", question.QuizID.Hex())
		}
		return apperr.NewStorage("verify quiz", err)
	}
	question.CreatedAt = time.Now().UTC()
	if err := s.Questions.Create(ctx, question); err != nil {
		return apperr.NewStorage("create question", err)
	}
	return nil
}

func (s *QuestionService) Update(ctx context.Context, id string, question *models.Question) (*models.Question, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.Questions.Update(ctx, id, question)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperr.NewNotFound("question", id)
		}
		return nil, apperr.NewStorage("update question", err)
	}
	return updated, nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.Questions.Delete(ctx, id); err != nil {
		if isNoDocuments(err) {
			return apperr.NewNotFound("question", id)
		}
		return apperr.NewStorage("delete question", err)
	}
	return nil
}
