package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotActive = errors.New("quiz session is not active")

// SessionStatus is the lifecycle state of a quiz session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// QuizSession represents a single quiz run for a user.
// It tracks the shuffled questions, the index of the current question and the score.
//
// Invariant: 0 <= Current <= len(Questions) and Score <= Current.
type QuizSession struct {
	ID          uuid.UUID     // unique session ID
	UserID      int64         // user ID who started the quiz
	Selection   Selection     // configuration the questions were generated from
	Questions   []Question    // shuffled once at start, never reordered
	Answers     []QuizAnswer  // one answer per consumed question
	Current     int           // index of the next question to ask
	Score       int           // number of correct answers so far
	Status      SessionStatus // "active", "completed" or "abandoned"
	StartedAt   time.Time     // timestamp when the quiz started
	UpdatedAt   time.Time     // timestamp of the last answer
	CompletedAt *time.Time    // timestamp when the quiz was completed (nullable)
}

// NewQuizSession creates an active session over the given questions.
func NewQuizSession(userID int64, selection Selection, questions []Question, now time.Time) *QuizSession {
	return &QuizSession{
		ID:        uuid.New(),
		UserID:    userID,
		Selection: selection.Clone(),
		Questions: questions,
		Answers:   make([]QuizAnswer, 0, len(questions)),
		Status:    SessionActive,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the session still accepts answers.
func (qs *QuizSession) IsActive() bool {
	return qs.Status == SessionActive
}

// Total returns the number of questions in the session.
func (qs *QuizSession) Total() int {
	return len(qs.Questions)
}

// CurrentQuestion returns the question awaiting an answer.
func (qs *QuizSession) CurrentQuestion() (Question, bool) {
	if !qs.IsActive() || qs.Current >= len(qs.Questions) {
		return Question{}, false
	}
	return qs.Questions[qs.Current], true
}

// Record stores the answer to the current question and advances by one.
// The session completes when the last question has been answered.
func (qs *QuizSession) Record(answer QuizAnswer) error {
	if _, ok := qs.CurrentQuestion(); !ok {
		return ErrSessionNotActive
	}

	qs.Answers = append(qs.Answers, answer)
	if answer.IsCorrect {
		qs.Score++
	}
	qs.Current++
	qs.UpdatedAt = answer.AnsweredAt

	if qs.Current == len(qs.Questions) {
		qs.Complete(answer.AnsweredAt)
	}

	return nil
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete(now time.Time) {
	qs.Status = SessionCompleted
	qs.CompletedAt = &now
}

// Abandon marks the session as abandoned.
func (qs *QuizSession) Abandon() {
	qs.Status = SessionAbandoned
}

// QuizAnswer represents a user's answer to a quiz question.
type QuizAnswer struct {
	Question      Question
	UserAnswer    string    // trimmed user input
	CorrectAnswer string    // expected form from the table
	IsCorrect     bool      // whether the answer was accepted
	AnsweredAt    time.Time // timestamp when the answer was submitted
}

// NewQuizAnswer creates a checked answer for q.
func NewQuizAnswer(q Question, userAnswer, correctAnswer string, isCorrect bool, answeredAt time.Time) QuizAnswer {
	return QuizAnswer{
		Question:      q,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		IsCorrect:     isCorrect,
		AnsweredAt:    answeredAt,
	}
}

// AnswerResult is returned to the host after each submission.
type AnswerResult struct {
	Answer    QuizAnswer
	Score     int  // score after this answer
	Answered  int  // questions answered so far
	Total     int  // questions in the session
	Completed bool // true when this answer finished the quiz
	Next      *Question
}
