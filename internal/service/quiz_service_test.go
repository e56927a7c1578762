package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateQuizValidation(t *testing.T) {
	cases := []struct {
		name       string
		quiz       models.Quiz
		wantFields []string
	}{
		{
			name: "valid",
			quiz: models.Quiz{Title: "Go Basics", Description: "Syntax and types", Category: "Programming"},
		},
		{
			name:       "whitespace title",
			quiz:       models.Quiz{Title: "   ", Description: "d", Category: "c"},
			wantFields: []string{"title"},
		},
		{
			name:       "long title",
			quiz:       models.Quiz{Title: strings.Repeat("x", models.MaxQuizTitleLen+1), Description: "d", Category: "c"},
			wantFields: []string{"title"},
		},
		{
			name: "multibyte title at limit",
			quiz: models.Quiz{Title: strings.Repeat("é", models.MaxQuizTitleLen), Description: "d", Category: "c"},
		},
		{
			name:       "multibyte title too long",
			quiz:       models.Quiz{Title: strings.Repeat("é", models.MaxQuizTitleLen+1), Description: "d", Category: "c"},
			wantFields: []string{"title"},
		},
		{
			name:       "everything missing",
			quiz:       models.Quiz{},
			wantFields: []string{"title", "description", "category"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewQuizService(&memQuizStore{}, &memQuestionStore{})
			err := svc.Create(context.Background(), &tc.quiz)
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Create: %v", err)
				}
				if !tc.quiz.IsActive || tc.quiz.ID.IsZero() || tc.quiz.CreatedAt.IsZero() {
					t.Errorf("created quiz not normalized: %+v", tc.quiz)
				}
				return
			}
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if len(verr.Fields) != len(tc.wantFields) {
				t.Fatalf("fields = %v, want %v", verr.Fields, tc.wantFields)
			}
			for i, f := range tc.wantFields {
				if verr.Fields[i] != f {
					t.Errorf("fields[%d] = %q, want %q", i, verr.Fields[i], f)
				}
			}
		})
	}
}

func TestGetQuizNotFound(t *testing.T) {
	svc := NewQuizService(&memQuizStore{}, &memQuestionStore{})
	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	var nfe *apperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestUpdateQuizMissing(t *testing.T) {
	svc := NewQuizService(&memQuizStore{}, &memQuestionStore{})
	quiz := models.Quiz{Title: "t", Description: "d", Category: "c"}
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &quiz)
	var nfe *apperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDeleteQuizCascadesToQuestions(t *testing.T) {
	quizzes := &memQuizStore{}
	questions := &memQuestionStore{}
	svc := NewQuizService(quizzes, questions)

	quiz := models.Quiz{Title: "t", Description: "d", Category: "c"}
	if err := svc.Create(context.Background(), &quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := models.Quiz{Title: "t2", Description: "d2", Category: "c2"}
	if err := svc.Create(context.Background(), &other); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, quizID := range []primitive.ObjectID{quiz.ID, quiz.ID, other.ID} {
		questions.Create(context.Background(), &models.Question{QuizID: quizID})
	}

	if err := svc.Delete(context.Background(), quiz.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), quiz.ID.Hex()); err == nil {
		t.Error("deleted quiz still readable")
	}
	swept, _ := questions.FindByQuiz(context.Background(), quiz.ID.Hex())
	if len(swept) != 0 {
		t.Errorf("%d questions survived the sweep", len(swept))
	}
	kept, _ := questions.FindByQuiz(context.Background(), other.ID.Hex())
	if len(kept) != 1 {
		t.Errorf("sibling quiz lost questions: %d left", len(kept))
	}
}

func TestDeleteQuizKeepsResults(t *testing.T) {
	quizzes := &memQuizStore{}
	questions := &memQuestionStore{}
	results := &memResultStore{}
	quizSvc := NewQuizService(quizzes, questions)
	resultSvc := NewResultService(results, questions, nil)

	quiz := models.Quiz{Title: "History", Description: "d", Category: "c"}
	if err := quizSvc.Create(context.Background(), &quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}
	bank := seedBank(questions, quiz.ID, 1, 0)
	sub := submissionFor(quiz.ID, bank, []int{1, 2}, 1, 2)
	sub.QuizTitle = quiz.Title
	if _, err := resultSvc.Submit(context.Background(), sub, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := quizSvc.Delete(context.Background(), quiz.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The quiz and its questions are gone; the recorded result is not.
	kept, err := resultSvc.List(context.Background(), ListOptions{QuizID: quiz.ID.Hex()})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("results after quiz delete = %d, want 1", len(kept))
	}
	if kept[0].QuizTitle != "History" || kept[0].Score != 1 || kept[0].TotalQuestions != 2 {
		t.Errorf("surviving result = %+v", kept[0])
	}
}

func TestDeleteQuizMissing(t *testing.T) {
	svc := NewQuizService(&memQuizStore{}, &memQuestionStore{})
	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	var nfe *apperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateQuestionRequiresQuiz(t *testing.T) {
	quizzes := &memQuizStore{}
	questions := &memQuestionStore{}
	svc := NewQuestionService(questions, quizzes)

	question := models.Question{
		QuizID:        primitive.NewObjectID(),
		QuestionText:  "Which keyword declares a constant?",
		Options:       []string{"let", "const", "var", "def"},
		CorrectAnswer: 1,
	}
	err := svc.Create(context.Background(), &question)
	var nfe *apperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want not found for missing parent quiz", err)
	}

	quiz := models.Quiz{Title: "t", Description: "d", Category: "c", IsActive: true}
	quizzes.Create(context.Background(), &quiz)
	question.QuizID = quiz.ID
	if err := svc.Create(context.Background(), &question); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if question.ID.IsZero() {
		t.Error("question ID not assigned")
	}
}
