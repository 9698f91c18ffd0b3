package service

import (
	"fmt"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// ConjugationService answers reference lookups outside of a quiz.
type ConjugationService struct {
	verbs VerbRepository
}

func NewConjugationService(verbs VerbRepository) *ConjugationService {
	return &ConjugationService{verbs: verbs}
}

// Form is one cell of a paradigm.
type Form struct {
	Pronoun entities.Pronoun
	Form    string
}

// Paradigm returns every pronoun's form of verb in tense.
func (s *ConjugationService) Paradigm(verb string, tense entities.Tense) ([]Form, error) {
	if !s.verbs.HasVerb(verb) {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownVerb, verb)
	}
	if _, ok := entities.ParseTense(string(tense)); !ok {
		return nil, fmt.Errorf("%w: unknown tense %q", ErrInvalidSelection, tense)
	}

	out := make([]Form, 0, len(entities.Pronouns))
	for _, p := range entities.Pronouns {
		form, err := s.verbs.Conjugate(verb, tense, p)
		if err != nil {
			return nil, err
		}
		out = append(out, Form{Pronoun: p, Form: form})
	}

	return out, nil
}

func (s *ConjugationService) Verbs() []string {
	return s.verbs.Verbs()
}
