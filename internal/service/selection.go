package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// SelectionService edits each user's pending verb/tense selection.
type SelectionService struct {
	verbs   VerbRepository
	storage SelectionStorage
}

func NewSelectionService(verbs VerbRepository, storage SelectionStorage) *SelectionService {
	return &SelectionService{verbs: verbs, storage: storage}
}

func (s *SelectionService) Get(_ context.Context, userID int64) entities.Selection {
	return s.storage.Get(userID)
}

// Set replaces the selection after checking it against the table.
func (s *SelectionService) Set(_ context.Context, userID int64, sel entities.Selection) error {
	if err := checkSelection(s.verbs, sel); err != nil {
		return err
	}
	sel.Verbs = uniqueKeepOrder(sel.Verbs)
	sel.Tenses = uniqueKeepOrder(sel.Tenses)
	s.storage.Put(userID, sel)
	return nil
}

// ToggleVerb adds verb to or removes it from the selection.
func (s *SelectionService) ToggleVerb(_ context.Context, userID int64, verb string) (entities.Selection, error) {
	if !s.verbs.HasVerb(verb) {
		return entities.Selection{}, fmt.Errorf("%w: unknown verb %q", ErrInvalidSelection, verb)
	}

	sel := s.storage.Get(userID)
	sel.Verbs = toggle(sel.Verbs, verb)
	s.storage.Put(userID, sel)
	return sel, nil
}

// ToggleTense adds tense to or removes it from the selection.
func (s *SelectionService) ToggleTense(_ context.Context, userID int64, name string) (entities.Selection, error) {
	tense, ok := entities.ParseTense(name)
	if !ok {
		return entities.Selection{}, fmt.Errorf("%w: unknown tense %q", ErrInvalidSelection, name)
	}

	sel := s.storage.Get(userID)
	sel.Tenses = toggle(sel.Tenses, tense)
	s.storage.Put(userID, sel)
	return sel, nil
}

// ToggleVosotros flips whether the vosotros form is asked.
func (s *SelectionService) ToggleVosotros(_ context.Context, userID int64) entities.Selection {
	sel := s.storage.Get(userID)
	sel.IncludeVosotros = !sel.IncludeVosotros
	s.storage.Put(userID, sel)
	return sel
}

// SelectAllVerbs selects every verb of the table.
func (s *SelectionService) SelectAllVerbs(_ context.Context, userID int64) entities.Selection {
	sel := s.storage.Get(userID)
	sel.Verbs = s.verbs.Verbs()
	s.storage.Put(userID, sel)
	return sel
}

// ClearVerbs deselects every verb.
func (s *SelectionService) ClearVerbs(_ context.Context, userID int64) entities.Selection {
	sel := s.storage.Get(userID)
	sel.Verbs = nil
	s.storage.Put(userID, sel)
	return sel
}

// Verbs returns the selectable verbs.
func (s *SelectionService) Verbs() []string {
	return s.verbs.Verbs()
}

func toggle[T comparable](in []T, v T) []T {
	if i := slices.Index(in, v); i >= 0 {
		return slices.Delete(slices.Clone(in), i, i+1)
	}
	return append(in, v)
}
