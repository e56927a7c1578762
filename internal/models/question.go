package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"quizhub-service/internal/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// OptionCount is fixed: every question carries exactly four choices.
	OptionCount = 4

	MaxQuestionTextLen = 1000
	MaxOptionLen       = 200
)

type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuizID        primitive.ObjectID `bson:"quiz_id" json:"quizId"`
	QuestionText  string             `bson:"question_text" json:"questionText"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer int                `bson:"correct_answer" json:"correctAnswer"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// Validate enforces the construction invariants. A question that fails here
// must never reach storage; options are never truncated or padded to fit.
func (q *Question) Validate() error {
	var fields []string

	// Length limits count characters, not bytes.
	if strings.TrimSpace(q.QuestionText) == "" {
		fields = append(fields, "questionText")
	} else if utf8.RuneCountInString(q.QuestionText) > MaxQuestionTextLen {
		fields = append(fields, "questionText")
	}

	if len(q.Options) != OptionCount {
		fields = append(fields, "options")
	} else {
		for i, opt := range q.Options {
			if strings.TrimSpace(opt) == "" || utf8.RuneCountInString(opt) > MaxOptionLen {
				fields = append(fields, fmt.Sprintf("options[%d]", i))
			}
		}
	}

	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
		fields = append(fields, "correctAnswer")
	}

	if len(fields) > 0 {
		return apperr.NewValidation("invalid question", fields...)
	}
	return nil
}

// PublicView strips the answer key for the quiz-taking surface.
func (q Question) PublicView() PublicQuestion {
	return PublicQuestion{
		ID:           q.ID,
		QuizID:       q.QuizID,
		QuestionText: q.QuestionText,
		Options:      q.Options,
		CreatedAt:    q.CreatedAt,
	}
}

type PublicQuestion struct {
	ID           primitive.ObjectID `json:"id"`
	QuizID       primitive.ObjectID `json:"quizId"`
	QuestionText string             `json:"questionText"`
	Options      []string           `json:"options"`
	CreatedAt    time.Time          `json:"createdAt"`
}
