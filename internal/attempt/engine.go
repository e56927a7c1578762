package attempt

import (
	"errors"
	"fmt"
	"time"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"

	"github.com/google/uuid"
)

// State is the tagged lifecycle state of an attempt. There is no open bag of
// flags: every transition goes through a typed method below.
type State int

const (
	StateCollectingInfo State = iota
	StateInProgress
	StateCompleted
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateCollectingInfo:
		return "collecting_info"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	case StateAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrAttemptCompleted is returned by every mutating call after the
	// attempt reached its terminal state. Completion is idempotent: the
	// caller gets a hard error rather than a silent no-op.
	ErrAttemptCompleted = errors.New("attempt already completed")
	ErrAttemptAbandoned = errors.New("attempt abandoned")
	ErrNotStarted       = errors.New("attempt not started")
	ErrAlreadyStarted   = errors.New("attempt already started")
)

// AdvanceResult tells the caller what Advance did. LeftUnanswered is the
// warning channel for moving past (or submitting with) an unanswered
// question; the engine never blocks on it.
type AdvanceResult struct {
	Completed      bool
	LeftUnanswered bool
}

// Engine walks one respondent through one quiz. It is exclusively owned by
// the session that created it and holds no storage handles; partial attempts
// are discarded, never persisted.
type Engine struct {
	id        string
	quiz      models.Quiz
	questions []models.Question

	state     State
	position  int
	answers   []int
	userName  string
	userEmail string
	startedAt time.Time
	events    []models.ScreenEvent

	now func() time.Time
}

// New builds an engine over the quiz's ordered question list.
func New(quiz models.Quiz, questions []models.Question) (*Engine, error) {
	if len(questions) == 0 {
		return nil, apperr.NewValidation("quiz has no questions", "questions")
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = models.UnansweredSentinel
	}
	return &Engine{
		id:        uuid.NewString(),
		quiz:      quiz,
		questions: questions,
		state:     StateCollectingInfo,
		answers:   answers,
		now:       time.Now,
	}, nil
}

func (e *Engine) ID() string        { return e.id }
func (e *Engine) State() State      { return e.state }
func (e *Engine) Position() int     { return e.position }
func (e *Engine) QuestionCount() int { return len(e.questions) }

// CurrentQuestion returns the question at the current position without its
// answer key, so a transport layer can hand it straight to the respondent.
func (e *Engine) CurrentQuestion() (models.PublicQuestion, error) {
	if e.state != StateInProgress {
		return models.PublicQuestion{}, e.stateError()
	}
	return e.questions[e.position].PublicView(), nil
}

// Start captures the respondent identity, stamps the start time and moves to
// the first question. Name is required; email is not.
func (e *Engine) Start(name, email string) error {
	if e.state != StateCollectingInfo {
		return e.stateError()
	}
	if name == "" {
		return apperr.NewValidation("respondent name is required", "userName")
	}
	e.userName = name
	e.userEmail = email
	e.startedAt = e.now()
	e.state = StateInProgress
	e.position = 0
	return nil
}

// SelectAnswer records (or overwrites) the answer for the current question
// only. It never advances the position.
func (e *Engine) SelectAnswer(index int) error {
	if e.state != StateInProgress {
		return e.stateError()
	}
	if index < 0 || index >= len(e.questions[e.position].Options) {
		return apperr.NewValidation("answer index out of range", "selectedAnswer")
	}
	e.answers[e.position] = index
	return nil
}

// Advance moves to the next question, or completes the attempt when already
// on the last one. Leaving the current question unanswered is allowed; the
// result flags it so the caller can confirm with the respondent.
func (e *Engine) Advance() (AdvanceResult, error) {
	if e.state != StateInProgress {
		return AdvanceResult{}, e.stateError()
	}
	res := AdvanceResult{
		LeftUnanswered: e.answers[e.position] == models.UnansweredSentinel,
	}
	if e.position < len(e.questions)-1 {
		e.position++
		return res, nil
	}
	e.state = StateCompleted
	res.Completed = true
	return res, nil
}

// Retreat steps back one question. At position zero it is a no-op, never an
// error.
func (e *Engine) Retreat() error {
	if e.state != StateInProgress {
		return e.stateError()
	}
	if e.position > 0 {
		e.position--
	}
	return nil
}

// Abandon discards the attempt. Nothing is persisted for abandoned attempts.
func (e *Engine) Abandon() error {
	if e.state != StateInProgress && e.state != StateCollectingInfo {
		return e.stateError()
	}
	e.state = StateAbandoned
	return nil
}

// RecordScreenEvent appends a proctoring signal. Events are pass-through and
// only accumulate while the attempt is in progress.
func (e *Engine) RecordScreenEvent(kind string) {
	if e.state != StateInProgress {
		return
	}
	e.events = append(e.events, models.ScreenEvent{
		Event:     kind,
		Timestamp: e.now().UTC().Format(time.RFC3339),
	})
}

// Unanswered lists the positions the respondent has not answered yet.
func (e *Engine) Unanswered() []int {
	var idxs []int
	for i, a := range e.answers {
		if a == models.UnansweredSentinel {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Score counts strict matches against the answer key. An unanswered question
// is never correct. The value is advisory once it crosses a trust boundary:
// the result recorder re-derives it.
func (e *Engine) Score() int {
	score := 0
	for i, q := range e.questions {
		if e.answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// BuildSubmission produces the recorder payload for a completed attempt.
func (e *Engine) BuildSubmission() (*models.ResultSubmission, error) {
	if e.state != StateCompleted {
		return nil, e.stateError()
	}
	details := make([]models.AnswerDetail, len(e.questions))
	score := 0
	for i, q := range e.questions {
		correct := e.answers[i] == q.CorrectAnswer
		if correct {
			score++
		}
		details[i] = models.AnswerDetail{
			QuestionID:     q.ID,
			SelectedAnswer: e.answers[i],
			IsCorrect:      correct,
		}
	}
	total := len(e.questions)
	timeSpent := int(e.now().Sub(e.startedAt).Seconds())
	if timeSpent < 0 {
		timeSpent = 0
	}
	return &models.ResultSubmission{
		QuizID:         e.quiz.ID.Hex(),
		QuizTitle:      e.quiz.Title,
		UserName:       e.userName,
		UserEmail:      e.userEmail,
		Score:          &score,
		TotalQuestions: &total,
		Answers:        details,
		TimeSpent:      timeSpent,
		ScreenEvents:   e.events,
	}, nil
}

func (e *Engine) stateError() error {
	switch e.state {
	case StateCompleted:
		return ErrAttemptCompleted
	case StateAbandoned:
		return ErrAttemptAbandoned
	case StateInProgress:
		return ErrAlreadyStarted
	default:
		return ErrNotStarted
	}
}
