package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// ResultStorage is an in-memory result history used when no database is configured.
type ResultStorage struct {
	mu      sync.RWMutex
	results map[int64][]*entities.QuizResult
}

func NewResultStorage() *ResultStorage {
	return &ResultStorage{
		results: make(map[int64][]*entities.QuizResult),
	}
}

// Save appends a completed quiz result.
func (s *ResultStorage) Save(_ context.Context, result *entities.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.UserID] = append(s.results[result.UserID], result)
	return nil
}

// GetStats aggregates the stored results of a user.
func (s *ResultStorage) GetStats(_ context.Context, userID int64) (*entities.ResultStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &entities.ResultStats{}
	for _, r := range s.results[userID] {
		stats.Quizzes++
		stats.Answered += r.Total
		stats.Correct += r.Score

		if r.Total > 0 && (stats.BestTotal == 0 || r.Score*stats.BestTotal > stats.BestScore*r.Total) {
			stats.BestScore = r.Score
			stats.BestTotal = r.Total
		}
	}

	return stats, nil
}
