package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// IdleSessionAbandoner drops sessions nobody answered for a while.
type IdleSessionAbandoner interface {
	AbandonIdle(ctx context.Context, ttl time.Duration) []*entities.QuizSession
}

// SessionSweeper periodically abandons idle quiz sessions.
type SessionSweeper struct {
	quiz     IdleSessionAbandoner
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
}

func NewSessionSweeper(quiz IdleSessionAbandoner, ttl, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		quiz:     quiz,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweep on a cron schedule until ctx is done.
func (s *SessionSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("add sweep job: %w", err)
	}

	c.Start()
	s.logger.Info("session sweeper started",
		zap.Duration("ttl", s.ttl),
		zap.Duration("interval", s.interval),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")

	return nil
}

// Sweep abandons idle sessions once and returns how many were dropped.
func (s *SessionSweeper) Sweep(ctx context.Context) int {
	removed := s.quiz.AbandonIdle(ctx, s.ttl)
	for _, session := range removed {
		s.logger.Info("idle quiz abandoned",
			zap.Int64("user_id", session.UserID),
			zap.String("session_id", session.ID.String()),
			zap.Int("answered", session.Current),
			zap.Int("total", session.Total()),
		)
	}
	return len(removed)
}
