// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownVerb        = errors.New("unknown verb")
	ErrMissingConjugation = errors.New("missing conjugation")
)

// Tense is a verb tense supported by the conjugation table.
type Tense string

const (
	TensePresent   Tense = "present"
	TensePreterite Tense = "preterite"
	TenseImperfect Tense = "imperfect"
)

// Tenses lists the supported tenses in display order.
var Tenses = []Tense{TensePresent, TensePreterite, TenseImperfect}

// ParseTense returns the tense named by s.
func ParseTense(s string) (Tense, bool) {
	for _, t := range Tenses {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Pronoun is a grammatical person of the six-pronoun paradigm.
type Pronoun string

const (
	PronounYo       Pronoun = "yo"
	PronounTu       Pronoun = "tú"
	PronounEl       Pronoun = "él/ella"
	PronounNosotros Pronoun = "nosotros"
	PronounVosotros Pronoun = "vosotros"
	PronounEllos    Pronoun = "ellos/ellas/ustedes"
)

// Pronouns lists the full paradigm in conjugation order.
var Pronouns = []Pronoun{
	PronounYo,
	PronounTu,
	PronounEl,
	PronounNosotros,
	PronounVosotros,
	PronounEllos,
}

// PronounsFor returns the paradigm, optionally without vosotros.
func PronounsFor(includeVosotros bool) []Pronoun {
	out := make([]Pronoun, 0, len(Pronouns))
	for _, p := range Pronouns {
		if p == PronounVosotros && !includeVosotros {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Forms maps tense and pronoun to a conjugated form (irregulars)
// or to a suffix (regular endings).
type Forms map[Tense]map[Pronoun]string

// ConjugationTable holds every form the drill can ask about.
// It is loaded once at startup and never modified afterwards.
type ConjugationTable struct {
	Irregulars   map[string]Forms `json:"irregulars"`    // verb -> tense -> pronoun -> form
	Regulars     map[string]Forms `json:"regulars"`      // ending ("-ar", "-er", "-ir") -> tense -> pronoun -> suffix
	RegularVerbs []string         `json:"regular_verbs"` // regular infinitives offered for selection
}

// DefaultRegularVerbs is used when the table does not list regular verbs.
var DefaultRegularVerbs = []string{"hablar", "comer", "vivir"}

// IsIrregular reports whether verb has literal forms stored in the table.
func (t *ConjugationTable) IsIrregular(verb string) bool {
	_, ok := t.Irregulars[verb]
	return ok
}

// Conjugate returns the form of verb for the given tense and pronoun.
// Irregular verbs are looked up directly, regular verbs are built as stem + suffix.
func (t *ConjugationTable) Conjugate(verb string, tense Tense, pronoun Pronoun) (string, error) {
	if forms, ok := t.Irregulars[verb]; ok {
		form, err := forms.lookup(tense, pronoun)
		if err != nil {
			return "", fmt.Errorf("%s: %w", verb, err)
		}
		return form, nil
	}

	stem, ending, err := SplitInfinitive(verb)
	if err != nil {
		return "", err
	}

	rules, ok := t.Regulars[ending]
	if !ok {
		return "", fmt.Errorf("%w: no rules for ending %s of %q", ErrUnknownVerb, ending, verb)
	}

	suffix, err := rules.lookup(tense, pronoun)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ending, err)
	}

	return stem + suffix, nil
}

// Verbs returns the selectable verbs: irregulars sorted by name, then
// regular verbs in table order. Regular entries shadowed by an irregular are skipped.
func (t *ConjugationTable) Verbs() []string {
	out := make([]string, 0, len(t.Irregulars)+len(t.RegularVerbs))
	for v := range t.Irregulars {
		out = append(out, v)
	}
	sort.Strings(out)

	for _, v := range t.regularVerbs() {
		if t.IsIrregular(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// HasVerb reports whether verb is one of the selectable verbs.
func (t *ConjugationTable) HasVerb(verb string) bool {
	if t.IsIrregular(verb) {
		return true
	}
	for _, v := range t.regularVerbs() {
		if v == verb {
			return true
		}
	}
	return false
}

// Validate checks that every irregular verb and every ending carries
// a form for each supported tense and pronoun, and that every listed
// regular verb has a rule set.
func (t *ConjugationTable) Validate() error {
	if len(t.Regulars) == 0 && len(t.Irregulars) == 0 {
		return errors.New("conjugation table is empty")
	}

	for verb, forms := range t.Irregulars {
		if err := forms.complete(); err != nil {
			return fmt.Errorf("irregular %s: %w", verb, err)
		}
	}

	for ending, forms := range t.Regulars {
		if err := forms.complete(); err != nil {
			return fmt.Errorf("regular %s: %w", ending, err)
		}
	}

	for _, verb := range t.regularVerbs() {
		if t.IsIrregular(verb) {
			continue
		}
		_, ending, err := SplitInfinitive(verb)
		if err != nil {
			return err
		}
		if _, ok := t.Regulars[ending]; !ok {
			return fmt.Errorf("regular verb %s: %w: no rules for %s", verb, ErrUnknownVerb, ending)
		}
	}

	return nil
}

func (t *ConjugationTable) regularVerbs() []string {
	if len(t.RegularVerbs) == 0 {
		return DefaultRegularVerbs
	}
	return t.RegularVerbs
}

// SplitInfinitive splits an infinitive into its stem and ending class,
// e.g. "hablar" -> ("habl", "-ar").
func SplitInfinitive(verb string) (stem, ending string, err error) {
	r := []rune(verb)
	if len(r) < 3 {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownVerb, verb)
	}
	return string(r[:len(r)-2]), "-" + string(r[len(r)-2:]), nil
}

func (f Forms) lookup(tense Tense, pronoun Pronoun) (string, error) {
	byPronoun, ok := f[tense]
	if !ok {
		return "", fmt.Errorf("%w: tense %s", ErrMissingConjugation, tense)
	}
	form, ok := byPronoun[pronoun]
	if !ok {
		return "", fmt.Errorf("%w: %s %s", ErrMissingConjugation, tense, pronoun)
	}
	return form, nil
}

func (f Forms) complete() error {
	for _, tense := range Tenses {
		for _, pronoun := range Pronouns {
			if _, err := f.lookup(tense, pronoun); err != nil {
				return err
			}
		}
	}
	return nil
}
