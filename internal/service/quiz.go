package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

var (
	ErrSessionNotFound  = errors.New("no active quiz session")
	ErrSessionCompleted = errors.New("quiz session is already completed")
)

// QuizService runs quiz sessions: it generates questions, checks answers
// and hands completed sessions to the result recorder.
type QuizService struct {
	mu sync.Mutex

	verbs     VerbRepository
	sessions  SessionStorage
	recorder  ResultRecorder
	generator *QuestionGenerator
	validator *AnswerValidator
	metrics   QuizMetrics
	logger    *zap.Logger

	now func() time.Time
}

func NewQuizService(
	verbs VerbRepository,
	sessions SessionStorage,
	recorder ResultRecorder,
	generator *QuestionGenerator,
	validator *AnswerValidator,
	metrics QuizMetrics,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		verbs:     verbs,
		sessions:  sessions,
		recorder:  recorder,
		generator: generator,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Start creates a new session from sel and makes it the user's active one.
// A previous active session is abandoned.
func (s *QuizService) Start(_ context.Context, userID int64, sel entities.Selection) (*entities.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.generator.Generate(sel)
	if err != nil {
		return nil, err
	}

	if prev, ok := s.sessions.Get(userID); ok && prev.IsActive() {
		prev.Abandon()
		s.metrics.QuizAbandoned()
		s.logger.Debug("previous quiz abandoned",
			zap.Int64("user_id", userID),
			zap.String("session_id", prev.ID.String()),
		)
	}

	session := entities.NewQuizSession(userID, sel, questions, s.now())
	s.sessions.Store(session)
	s.metrics.QuizStarted()

	s.logger.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.Int("questions", session.Total()),
	)

	return session, nil
}

// Current returns the question awaiting an answer in the user's active session.
func (s *QuizService) Current(_ context.Context, userID int64) (*entities.QuizSession, entities.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, entities.Question{}, ErrSessionNotFound
	}

	q, ok := session.CurrentQuestion()
	if !ok {
		return nil, entities.Question{}, ErrSessionCompleted
	}

	return session, q, nil
}

// Submit checks answer against the current question and advances the session by one.
func (s *QuizService) Submit(ctx context.Context, userID int64, answer string) (*entities.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	q, ok := session.CurrentQuestion()
	if !ok {
		return nil, ErrSessionCompleted
	}

	correct, err := s.verbs.Conjugate(q.Verb, q.Tense, q.Pronoun)
	if err != nil {
		return nil, fmt.Errorf("conjugate %s/%s/%s: %w", q.Verb, q.Tense, q.Pronoun, err)
	}

	userAnswer := strings.TrimSpace(answer)
	isCorrect := s.validator.Validate(userAnswer, correct)

	qa := entities.NewQuizAnswer(q, userAnswer, correct, isCorrect, s.now())
	if err = session.Record(qa); err != nil {
		return nil, err
	}
	s.metrics.AnswerChecked(isCorrect)

	result := &entities.AnswerResult{
		Answer:    qa,
		Score:     session.Score,
		Answered:  session.Current,
		Total:     session.Total(),
		Completed: !session.IsActive(),
	}

	if next, ok := session.CurrentQuestion(); ok {
		result.Next = &next
		return result, nil
	}

	s.sessions.Delete(userID)
	s.metrics.QuizCompleted()

	s.logger.Info("quiz completed",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.Int("score", session.Score),
		zap.Int("total", session.Total()),
	)

	if err = s.recorder.Record(ctx, entities.NewQuizResult(session)); err != nil {
		s.logger.Error("failed to record quiz result",
			zap.Int64("user_id", userID),
			zap.String("session_id", session.ID.String()),
			zap.Error(err),
		)
	}

	return result, nil
}

// Abandon drops the user's active session.
func (s *QuizService) Abandon(_ context.Context, userID int64) (*entities.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.Abandon()
	s.sessions.Delete(userID)
	s.metrics.QuizAbandoned()

	return session, nil
}

// AbandonIdle abandons sessions that have not been answered for ttl.
func (s *QuizService) AbandonIdle(_ context.Context, ttl time.Duration) []*entities.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.sessions.DeleteIdle(s.now().Add(-ttl))
	for _, session := range removed {
		session.Abandon()
		s.metrics.QuizAbandoned()
	}

	return removed
}
