package service

import (
	"context"
	"errors"
	"sync"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// fakeVerbs conjugates every verb as verb+"-"+tense+"-"+pronoun,
// except entries listed in missing.
type fakeVerbs struct {
	verbs   []string
	missing map[entities.Question]bool
}

func newFakeVerbs(verbs ...string) *fakeVerbs {
	return &fakeVerbs{verbs: verbs, missing: map[entities.Question]bool{}}
}

func (f *fakeVerbs) Conjugate(verb string, tense entities.Tense, pronoun entities.Pronoun) (string, error) {
	if f.missing[entities.Question{Verb: verb, Tense: tense, Pronoun: pronoun}] {
		return "", entities.ErrMissingConjugation
	}
	return verb + "-" + string(tense) + "-" + string(pronoun), nil
}

func (f *fakeVerbs) Verbs() []string { return f.verbs }

func (f *fakeVerbs) HasVerb(verb string) bool {
	for _, v := range f.verbs {
		if v == verb {
			return true
		}
	}
	return false
}

func expected(q entities.Question) string {
	return q.Verb + "-" + string(q.Tense) + "-" + string(q.Pronoun)
}

type fakeRecorder struct {
	mu      sync.Mutex
	results []*entities.QuizResult
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, r *entities.QuizResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, r)
	return nil
}

type fakeMetrics struct {
	started, completed, abandoned, correct, wrong int
}

func (f *fakeMetrics) QuizStarted()   { f.started++ }
func (f *fakeMetrics) QuizCompleted() { f.completed++ }
func (f *fakeMetrics) QuizAbandoned() { f.abandoned++ }
func (f *fakeMetrics) AnswerChecked(correct bool) {
	if correct {
		f.correct++
		return
	}
	f.wrong++
}

type fakeResultRepo struct {
	saved []*entities.QuizResult
	stats *entities.ResultStats
	err   error
}

func (f *fakeResultRepo) Save(_ context.Context, r *entities.QuizResult) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeResultRepo) GetStats(_ context.Context, _ int64) (*entities.ResultStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

type fakeUserRepo struct {
	users map[int64]*entities.User
	err   error
}

func (f *fakeUserRepo) Save(_ context.Context, u *entities.User) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.users[u.ID] = u
	return true, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[id]
	return ok, nil
}

var errBoom = errors.New("boom")
