package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

var ErrInvalidTable = errors.New("invalid conjugation table")

// VerbRepository provides read-only access to the conjugation table.
// The table is loaded from JSON once and kept in memory.
type VerbRepository struct {
	table *entities.ConjugationTable
	verbs []string
}

// NewVerbRepository loads and validates the conjugation table at path.
func NewVerbRepository(path string) (*VerbRepository, error) {
	table, err := loadTable(path)
	if err != nil {
		return nil, err
	}

	return NewVerbRepositoryFromTable(table)
}

// NewVerbRepositoryFromTable wraps an already decoded table.
func NewVerbRepositoryFromTable(table *entities.ConjugationTable) (*VerbRepository, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	return &VerbRepository{
		table: table,
		verbs: table.Verbs(),
	}, nil
}

// Conjugate returns the expected form for the given verb, tense and pronoun.
func (r *VerbRepository) Conjugate(verb string, tense entities.Tense, pronoun entities.Pronoun) (string, error) {
	return r.table.Conjugate(verb, tense, pronoun)
}

// Verbs returns all selectable verbs.
func (r *VerbRepository) Verbs() []string {
	return append([]string(nil), r.verbs...)
}

// HasVerb reports whether verb can be selected.
func (r *VerbRepository) HasVerb(verb string) bool {
	return r.table.HasVerb(verb)
}

// IsIrregular reports whether verb is stored with literal forms.
func (r *VerbRepository) IsIrregular(verb string) bool {
	return r.table.IsIrregular(verb)
}

func loadTable(path string) (*entities.ConjugationTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conjugation table: %w", err)
	}

	var table entities.ConjugationTable
	if err = json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conjugation JSON: %w", err)
	}

	return &table, nil
}
