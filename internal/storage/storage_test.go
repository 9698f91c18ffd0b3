package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

func TestQuizStorage(t *testing.T) {
	s := NewQuizStorage()
	now := time.Now()

	fresh := entities.NewQuizSession(1, entities.NewSelection(), nil, now)
	stale := entities.NewQuizSession(2, entities.NewSelection(), nil, now.Add(-3*time.Hour))
	s.Store(fresh)
	s.Store(stale)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Same(t, fresh, got)

	removed := s.DeleteIdle(now.Add(-time.Hour))
	require.Len(t, removed, 1)
	assert.Same(t, stale, removed[0])
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestSelectionStorageDefaultsAndCopies(t *testing.T) {
	s := NewSelectionStorage()

	sel := s.Get(5)
	assert.True(t, sel.IncludeVosotros)
	assert.Empty(t, sel.Verbs)

	sel.Verbs = []string{"ser"}
	s.Put(5, sel)
	sel.Verbs[0] = "ir"

	assert.Equal(t, []string{"ser"}, s.Get(5).Verbs)
}

func TestResultStorageStats(t *testing.T) {
	s := NewResultStorage()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entities.QuizResult{UserID: 1, Score: 3, Total: 6}))
	require.NoError(t, s.Save(ctx, &entities.QuizResult{UserID: 1, Score: 4, Total: 5}))
	require.NoError(t, s.Save(ctx, &entities.QuizResult{UserID: 2, Score: 1, Total: 1}))

	stats, err := s.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Quizzes)
	assert.Equal(t, 11, stats.Answered)
	assert.Equal(t, 7, stats.Correct)
	assert.Equal(t, 4, stats.BestScore)
	assert.Equal(t, 5, stats.BestTotal)
}
