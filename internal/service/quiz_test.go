package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/storage"
)

type quizFixture struct {
	svc      *QuizService
	verbs    *fakeVerbs
	sessions *storage.QuizStorage
	recorder *fakeRecorder
	metrics  *fakeMetrics
	clock    time.Time
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	f := &quizFixture{
		verbs:    newFakeVerbs("hablar", "ser"),
		sessions: storage.NewQuizStorage(),
		recorder: &fakeRecorder{},
		metrics:  &fakeMetrics{},
		clock:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewQuizService(
		f.verbs,
		f.sessions,
		f.recorder,
		NewQuestionGeneratorWithRand(f.verbs, rand.New(rand.NewSource(7))),
		NewAnswerValidator(),
		f.metrics,
		zap.NewNop(),
	)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func twoByTwo() entities.Selection {
	return entities.Selection{
		Verbs:           []string{"hablar", "ser"},
		Tenses:          []entities.Tense{entities.TensePresent, entities.TenseImperfect},
		IncludeVosotros: true,
	}
}

func TestQuizFullRun(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)
	require.Equal(t, 24, session.Total())

	var last *entities.AnswerResult
	for i := 0; i < session.Total(); i++ {
		_, q, err := f.svc.Current(ctx, 1)
		require.NoError(t, err)

		answer := "wrong"
		if i%2 == 0 {
			answer = expected(q)
		}

		last, err = f.svc.Submit(ctx, 1, answer)
		require.NoError(t, err)
		assert.Equal(t, i+1, last.Answered)
		assert.LessOrEqual(t, last.Score, last.Answered)
		assert.Equal(t, i%2 == 0, last.Answer.IsCorrect)
		assert.Equal(t, expected(q), last.Answer.CorrectAnswer)
	}

	require.NotNil(t, last)
	assert.True(t, last.Completed)
	assert.Nil(t, last.Next)
	assert.Equal(t, 12, last.Score)

	_, _, err = f.svc.Current(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.svc.Submit(ctx, 1, "x")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.Len(t, f.recorder.results, 1)
	assert.Equal(t, 12, f.recorder.results[0].Score)
	assert.Equal(t, 24, f.recorder.results[0].Total)
	assert.Len(t, f.recorder.results[0].Answers, 24)

	assert.Equal(t, 1, f.metrics.started)
	assert.Equal(t, 1, f.metrics.completed)
	assert.Equal(t, 12, f.metrics.correct)
	assert.Equal(t, 12, f.metrics.wrong)
}

func TestQuizSubmitTrimsAndAdvances(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	_, q, err := f.svc.Current(ctx, 1)
	require.NoError(t, err)

	res, err := f.svc.Submit(ctx, 1, "  "+expected(q)+"\n")
	require.NoError(t, err)
	assert.True(t, res.Answer.IsCorrect)
	assert.Equal(t, expected(q), res.Answer.UserAnswer)
	require.NotNil(t, res.Next)

	_, next, err := f.svc.Current(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *res.Next, next)
}

func TestQuizEmptyAnswerIsWrong(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	res, err := f.svc.Submit(ctx, 1, "")
	require.NoError(t, err)
	assert.False(t, res.Answer.IsCorrect)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 1, res.Answered)
}

func TestQuizMissingConjugationDoesNotAdvance(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	session, q, err := f.svc.Current(ctx, 1)
	require.NoError(t, err)
	f.verbs.missing[q] = true

	_, err = f.svc.Submit(ctx, 1, "anything")
	assert.ErrorIs(t, err, entities.ErrMissingConjugation)
	assert.Equal(t, 0, session.Current)
}

func TestQuizStartRejectsEmptySelection(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.Start(context.Background(), 1, entities.NewSelection())
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
	assert.Zero(t, f.metrics.started)
}

func TestQuizStartReplacesActiveSession(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	first, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)
	second, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	assert.Equal(t, entities.SessionAbandoned, first.Status)
	assert.True(t, second.IsActive())
	assert.Equal(t, 1, f.metrics.abandoned)

	got, _, err := f.svc.Current(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestQuizAbandon(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Abandon(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	session, err := f.svc.Abandon(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionAbandoned, session.Status)
	assert.Empty(t, f.recorder.results)
}

func TestQuizRecorderFailureStillCompletes(t *testing.T) {
	f := newQuizFixture(t)
	f.recorder.err = errBoom
	ctx := context.Background()

	session, err := f.svc.Start(ctx, 1, entities.Selection{
		Verbs:  []string{"ser"},
		Tenses: []entities.Tense{entities.TensePresent},
	})
	require.NoError(t, err)

	var res *entities.AnswerResult
	for range session.Total() {
		res, err = f.svc.Submit(ctx, 1, "x")
		require.NoError(t, err)
	}
	assert.True(t, res.Completed)
	assert.Equal(t, 5, res.Total)
}

func TestQuizAbandonIdle(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)

	f.clock = f.clock.Add(30 * time.Minute)
	_, err = f.svc.Start(ctx, 2, twoByTwo())
	require.NoError(t, err)

	f.clock = f.clock.Add(2 * time.Hour)
	_, err = f.svc.Submit(ctx, 2, "x")
	require.NoError(t, err)

	removed := f.svc.AbandonIdle(ctx, 2*time.Hour)
	require.Len(t, removed, 1)
	assert.Equal(t, int64(1), removed[0].UserID)
	assert.Equal(t, entities.SessionAbandoned, removed[0].Status)

	_, _, err = f.svc.Current(ctx, 2)
	assert.NoError(t, err)
}

func TestSessionSweeperSweep(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, twoByTwo())
	require.NoError(t, err)
	f.clock = f.clock.Add(3 * time.Hour)

	sweeper := NewSessionSweeper(f.svc, 2*time.Hour, time.Minute, zap.NewNop())
	assert.Equal(t, 1, sweeper.Sweep(ctx))
	assert.Equal(t, 0, sweeper.Sweep(ctx))
}

func TestSessionSweeperStartStops(t *testing.T) {
	f := newQuizFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	sweeper := NewSessionSweeper(f.svc, time.Hour, time.Minute, zap.NewNop())
	done := make(chan error, 1)
	go func() { done <- sweeper.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
