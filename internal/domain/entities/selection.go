package entities

import "slices"

// Selection is the user's pending quiz configuration.
type Selection struct {
	Verbs           []string // verbs to drill, in selection order
	Tenses          []Tense  // tenses to drill, in selection order
	IncludeVosotros bool     // whether the vosotros form is asked
}

// NewSelection returns an empty selection with vosotros included.
func NewSelection() Selection {
	return Selection{IncludeVosotros: true}
}

// HasVerb reports whether verb is selected.
func (s Selection) HasVerb(verb string) bool {
	return slices.Contains(s.Verbs, verb)
}

// HasTense reports whether tense is selected.
func (s Selection) HasTense(tense Tense) bool {
	return slices.Contains(s.Tenses, tense)
}

// Clone returns a deep copy so callers can't alias stored slices.
func (s Selection) Clone() Selection {
	return Selection{
		Verbs:           slices.Clone(s.Verbs),
		Tenses:          slices.Clone(s.Tenses),
		IncludeVosotros: s.IncludeVosotros,
	}
}

// TenseNames returns the selected tenses as plain strings.
func (s Selection) TenseNames() []string {
	out := make([]string, 0, len(s.Tenses))
	for _, t := range s.Tenses {
		out = append(out, string(t))
	}
	return out
}
