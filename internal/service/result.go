package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// ResultService records completed quizzes and summarizes a user's history.
type ResultService struct {
	repository ResultRepository
}

func NewResultService(repository ResultRepository) *ResultService {
	return &ResultService{repository: repository}
}

// Record persists a completed quiz.
func (s *ResultService) Record(ctx context.Context, result *entities.QuizResult) error {
	if err := s.repository.Save(ctx, result); err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

type ResultSummary struct {
	Quizzes   int
	Answered  int
	Correct   int
	Accuracy  float64
	BestScore int
	BestTotal int
}

func (s *ResultService) Summary(ctx context.Context, userID int64) (*ResultSummary, error) {
	stats, err := s.repository.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get result stats: %w", err)
	}

	accuracy := 0.0
	if stats.Answered > 0 {
		accuracy = float64(stats.Correct) / float64(stats.Answered) * 100
	}

	return &ResultSummary{
		Quizzes:   stats.Quizzes,
		Answered:  stats.Answered,
		Correct:   stats.Correct,
		Accuracy:  accuracy,
		BestScore: stats.BestScore,
		BestTotal: stats.BestTotal,
	}, nil
}
