package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

func TestNewVerbRepository(t *testing.T) {
	repo, err := NewVerbRepository(filepath.Join("testdata", "verbs.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{"ser", "hablar", "comer"}, repo.Verbs())
	assert.True(t, repo.IsIrregular("ser"))
	assert.False(t, repo.IsIrregular("hablar"))

	form, err := repo.Conjugate("hablar", entities.TensePresent, entities.PronounYo)
	require.NoError(t, err)
	assert.Equal(t, "hablo", form)

	form, err = repo.Conjugate("comer", entities.TensePreterite, entities.PronounEl)
	require.NoError(t, err)
	assert.Equal(t, "comió", form)

	form, err = repo.Conjugate("ser", entities.TenseImperfect, entities.PronounNosotros)
	require.NoError(t, err)
	assert.Equal(t, "éramos", form)
}

func TestNewVerbRepositoryIncompleteTable(t *testing.T) {
	_, err := NewVerbRepository(filepath.Join("testdata", "verbs_incomplete.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
	assert.ErrorIs(t, err, entities.ErrMissingConjugation)
}

func TestNewVerbRepositoryMissingFile(t *testing.T) {
	_, err := NewVerbRepository(filepath.Join("testdata", "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewVerbRepositoryMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"irregulars": [`), 0o600))

	_, err := NewVerbRepository(path)
	assert.Error(t, err)
}

func TestVerbsReturnsCopy(t *testing.T) {
	repo, err := NewVerbRepository(filepath.Join("testdata", "verbs.json"))
	require.NoError(t, err)

	verbs := repo.Verbs()
	verbs[0] = "tampered"
	assert.Equal(t, "ser", repo.Verbs()[0])
}

func TestShippedTableIsValid(t *testing.T) {
	repo, err := NewVerbRepository(filepath.Join("..", "..", "assets", "data", "verbs.json"))
	require.NoError(t, err)

	for _, verb := range repo.Verbs() {
		for _, tense := range entities.Tenses {
			for _, pronoun := range entities.Pronouns {
				form, err := repo.Conjugate(verb, tense, pronoun)
				require.NoError(t, err)
				assert.NotEmpty(t, form)
			}
		}
	}
}
