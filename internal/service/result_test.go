package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

func TestResultSummary(t *testing.T) {
	repo := &fakeResultRepo{stats: &entities.ResultStats{
		Quizzes:   3,
		Answered:  40,
		Correct:   30,
		BestScore: 9,
		BestTotal: 10,
	}}
	s := NewResultService(repo)

	summary, err := s.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Quizzes)
	assert.InDelta(t, 75.0, summary.Accuracy, 0.001)
	assert.Equal(t, 9, summary.BestScore)
}

func TestResultSummaryEmpty(t *testing.T) {
	s := NewResultService(&fakeResultRepo{stats: &entities.ResultStats{}})

	summary, err := s.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, summary.Accuracy)
}

func TestResultRecordWrapsError(t *testing.T) {
	s := NewResultService(&fakeResultRepo{err: errBoom})

	err := s.Record(context.Background(), &entities.QuizResult{})
	assert.ErrorIs(t, err, errBoom)

	_, err = s.Summary(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)
}

func TestEnsureUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entities.User{}}
	s := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, s.EnsureUser(ctx, 10, 20))
	require.Contains(t, repo.users, int64(10))
	assert.Equal(t, int64(20), repo.users[10].ChatID)

	require.NoError(t, s.EnsureUser(ctx, 10, 99))
	assert.Equal(t, int64(20), repo.users[10].ChatID)

	repo.err = errBoom
	assert.ErrorIs(t, s.EnsureUser(ctx, 11, 1), errBoom)
}

func TestParadigm(t *testing.T) {
	s := NewConjugationService(newFakeVerbs("ser"))

	forms, err := s.Paradigm("ser", entities.TensePresent)
	require.NoError(t, err)
	require.Len(t, forms, 6)
	assert.Equal(t, entities.PronounYo, forms[0].Pronoun)
	assert.Equal(t, "ser-present-yo", forms[0].Form)

	_, err = s.Paradigm("volar", entities.TensePresent)
	assert.ErrorIs(t, err, entities.ErrUnknownVerb)

	_, err = s.Paradigm("ser", "future")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
