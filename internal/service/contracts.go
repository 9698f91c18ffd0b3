package service

import (
	"context"
	"time"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// VerbRepository is the read-only conjugation table.
type VerbRepository interface {
	Conjugate(verb string, tense entities.Tense, pronoun entities.Pronoun) (string, error)
	Verbs() []string
	HasVerb(verb string) bool
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

// SessionStorage keeps active quiz sessions by user.
type SessionStorage interface {
	Store(session *entities.QuizSession)
	Get(userID int64) (*entities.QuizSession, bool)
	Delete(userID int64)
	DeleteIdle(before time.Time) []*entities.QuizSession
}

// SelectionStorage keeps pending selections by user.
type SelectionStorage interface {
	Get(userID int64) entities.Selection
	Put(userID int64, sel entities.Selection)
}

// ResultRepository persists completed quiz results.
type ResultRepository interface {
	Save(ctx context.Context, result *entities.QuizResult) error
	GetStats(ctx context.Context, userID int64) (*entities.ResultStats, error)
}

// ResultRecorder receives completed sessions from the quiz service.
type ResultRecorder interface {
	Record(ctx context.Context, result *entities.QuizResult) error
}

// QuizMetrics counts quiz activity.
type QuizMetrics interface {
	QuizStarted()
	QuizCompleted()
	QuizAbandoned()
	AnswerChecked(correct bool)
}
