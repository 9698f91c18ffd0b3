package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is the recorded summary of a completed quiz session.
type QuizResult struct {
	SessionID   uuid.UUID
	UserID      int64
	Score       int
	Total       int
	Selection   Selection
	Answers     []QuizAnswer
	StartedAt   time.Time
	CompletedAt time.Time
}

// NewQuizResult builds a result from a completed session.
func NewQuizResult(s *QuizSession) *QuizResult {
	completedAt := s.UpdatedAt
	if s.CompletedAt != nil {
		completedAt = *s.CompletedAt
	}

	return &QuizResult{
		SessionID:   s.ID,
		UserID:      s.UserID,
		Score:       s.Score,
		Total:       s.Total(),
		Selection:   s.Selection.Clone(),
		Answers:     append([]QuizAnswer(nil), s.Answers...),
		StartedAt:   s.StartedAt,
		CompletedAt: completedAt,
	}
}

// ResultStats aggregates recorded results of a user.
type ResultStats struct {
	Quizzes   int // completed quizzes
	Answered  int // answered questions across all quizzes
	Correct   int // correct answers across all quizzes
	BestScore int // score of the best quiz by ratio
	BestTotal int // total of the best quiz by ratio
}
