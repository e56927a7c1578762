package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnansweredSentinel marks a question the respondent never answered.
const UnansweredSentinel = -1

type AnswerDetail struct {
	QuestionID     primitive.ObjectID `bson:"question_id" json:"questionId"`
	SelectedAnswer int                `bson:"selected_answer" json:"selectedAnswer"`
	IsCorrect      bool               `bson:"is_correct" json:"isCorrect"`
}

// ScreenEvent is an opaque proctoring signal captured client-side during an
// attempt (focus lost, tab hidden, ...). Event kinds are not validated.
type ScreenEvent struct {
	Event     string `bson:"event" json:"event"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
}

// Result is the immutable outcome of one completed attempt. It is written
// once and only ever read afterwards; it survives deletion of its quiz.
type Result struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuizID         primitive.ObjectID `bson:"quiz_id" json:"quizId"`
	QuizTitle      string             `bson:"quiz_title" json:"quizTitle"`
	UserName       string             `bson:"user_name" json:"userName"`
	UserEmail      string             `bson:"user_email" json:"userEmail"`
	Score          int                `bson:"score" json:"score"`
	TotalQuestions int                `bson:"total_questions" json:"totalQuestions"`
	Percentage     int                `bson:"percentage" json:"percentage"`
	Answers        []AnswerDetail     `bson:"answers" json:"answers"`
	TimeSpent      int                `bson:"time_spent" json:"timeSpent"`
	CompletedAt    time.Time          `bson:"completed_at" json:"completedAt"`
	IPAddress      string             `bson:"ip_address" json:"ipAddress"`
	ScreenEvents   []ScreenEvent      `bson:"screen_events" json:"screenEvents"`
}

// ResultSubmission is the payload a completed attempt posts to the recorder.
// Score and TotalQuestions are pointers so an absent field is distinguishable
// from a legitimate zero. Percentage, if sent, is ignored and re-derived.
type ResultSubmission struct {
	QuizID         string         `json:"quizId"`
	QuizTitle      string         `json:"quizTitle"`
	UserName       string         `json:"userName"`
	UserEmail      string         `json:"userEmail"`
	Score          *int           `json:"score"`
	TotalQuestions *int           `json:"totalQuestions"`
	Percentage     *int           `json:"percentage,omitempty"`
	Answers        []AnswerDetail `json:"answers"`
	TimeSpent      int            `json:"timeSpent"`
	ScreenEvents   []ScreenEvent  `json:"screenEvents"`
}

// ResultConfirmation is the compact acknowledgement returned on submit. It
// never echoes the full stored record.
type ResultConfirmation struct {
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	CompletedAt    time.Time `json:"completedAt"`
}

// QuizStats aggregates a (possibly quiz-filtered) result set. All derived
// fields are zero over an empty set.
type QuizStats struct {
	TotalAttempts     int     `json:"totalAttempts"`
	AverageScore      float64 `json:"averageScore"`
	AveragePercentage float64 `json:"averagePercentage"`
	HighestScore      int     `json:"highestScore"`
	LowestScore       int     `json:"lowestScore"`
}

// DashboardSummary backs the admin landing view.
type DashboardSummary struct {
	TotalQuizzes   int64    `json:"totalQuizzes"`
	TotalQuestions int64    `json:"totalQuestions"`
	TotalAttempts  int64    `json:"totalAttempts"`
	RecentResults  []Result `json:"recentResults"`
}
