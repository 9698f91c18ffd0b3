package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/infra/postgres"
)

var ErrResultExists = errors.New("quiz result already recorded")

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ResultRepository stores completed quiz results and their answers.
type ResultRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db postgres.DBTX, tx TxRunner) *ResultRepository {
	return &ResultRepository{db: db, tx: tx}
}

// Save inserts the result and all of its answers in one transaction.
func (r *ResultRepository) Save(ctx context.Context, result *entities.QuizResult) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO quiz_results (
				session_id, user_id, score, total, verbs, tenses,
				include_vosotros, started_at, completed_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (session_id) DO NOTHING
			RETURNING id
		`

		var id int64
		err := tx.QueryRow(
			ctx,
			query,
			result.SessionID.String(),
			result.UserID,
			result.Score,
			result.Total,
			result.Selection.Verbs,
			result.Selection.TenseNames(),
			result.Selection.IncludeVosotros,
			result.StartedAt,
			result.CompletedAt,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrResultExists
			}
			return fmt.Errorf("insert quiz result: %w", err)
		}

		batch := &pgx.Batch{}
		for i, a := range result.Answers {
			batch.Queue(`
				INSERT INTO quiz_answers (
					result_id, question_order, verb, tense, pronoun,
					user_answer, correct_answer, is_correct, answered_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`,
				id,
				i+1,
				a.Question.Verb,
				string(a.Question.Tense),
				string(a.Question.Pronoun),
				a.UserAnswer,
				a.CorrectAnswer,
				a.IsCorrect,
				a.AnsweredAt,
			)
		}

		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert quiz answers: %w", err)
		}

		return nil
	})
}

// GetStats aggregates the recorded results of a user.
func (r *ResultRepository) GetStats(ctx context.Context, userID int64) (*entities.ResultStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(score), 0)
		FROM quiz_results
		WHERE user_id = $1
	`

	var stats entities.ResultStats
	err := r.db.QueryRow(ctx, query, userID).Scan(&stats.Quizzes, &stats.Answered, &stats.Correct)
	if err != nil {
		return nil, fmt.Errorf("get result stats: %w", err)
	}

	if stats.Quizzes == 0 {
		return &stats, nil
	}

	bestQuery := `
		SELECT score, total
		FROM quiz_results
		WHERE user_id = $1 AND total > 0
		ORDER BY score::float8 / total DESC, total DESC, completed_at DESC
		LIMIT 1
	`

	err = r.db.QueryRow(ctx, bestQuery, userID).Scan(&stats.BestScore, &stats.BestTotal)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get best result: %w", err)
	}

	return &stats, nil
}
