package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrInvalidSelection     = errors.New("invalid selection")
)

// VerbCatalog reports which verbs can be drilled.
type VerbCatalog interface {
	HasVerb(verb string) bool
}

// QuestionGenerator expands a selection into a shuffled question list.
// It is not safe for concurrent use.
type QuestionGenerator struct {
	catalog VerbCatalog
	rng     *rand.Rand
}

// NewQuestionGenerator creates a generator seeded from the clock.
func NewQuestionGenerator(catalog VerbCatalog) *QuestionGenerator {
	return NewQuestionGeneratorWithRand(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewQuestionGeneratorWithRand creates a generator using rng for shuffling.
func NewQuestionGeneratorWithRand(catalog VerbCatalog, rng *rand.Rand) *QuestionGenerator {
	return &QuestionGenerator{
		catalog: catalog,
		rng:     rng,
	}
}

// Generate builds verbs x tenses x pronouns from sel and shuffles it once.
func (g *QuestionGenerator) Generate(sel entities.Selection) ([]entities.Question, error) {
	if err := checkSelection(g.catalog, sel); err != nil {
		return nil, err
	}

	verbs := uniqueKeepOrder(sel.Verbs)
	tenses := uniqueKeepOrder(sel.Tenses)
	pronouns := entities.PronounsFor(sel.IncludeVosotros)

	if len(verbs) == 0 || len(tenses) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	questions := make([]entities.Question, 0, len(verbs)*len(tenses)*len(pronouns))
	for _, verb := range verbs {
		for _, tense := range tenses {
			for _, pronoun := range pronouns {
				questions = append(questions, entities.Question{
					Verb:    verb,
					Tense:   tense,
					Pronoun: pronoun,
				})
			}
		}
	}

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

// checkSelection rejects verbs or tenses the table does not know.
func checkSelection(catalog VerbCatalog, sel entities.Selection) error {
	for _, verb := range sel.Verbs {
		if !catalog.HasVerb(verb) {
			return fmt.Errorf("%w: unknown verb %q", ErrInvalidSelection, verb)
		}
	}
	for _, tense := range sel.Tenses {
		if _, ok := entities.ParseTense(string(tense)); !ok {
			return fmt.Errorf("%w: unknown tense %q", ErrInvalidSelection, tense)
		}
	}
	return nil
}

// uniqueKeepOrder removes duplicates while preserving the original order.
func uniqueKeepOrder[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
