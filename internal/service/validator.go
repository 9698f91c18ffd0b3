package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AnswerValidator compares typed answers with expected forms, ignoring accents and case.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate checks if the user's answer matches the correct answer.
// Missing or extra diacritics are tolerated, letters and word order are not.
func (v *AnswerValidator) Validate(userAnswer, correctAnswer string) bool {
	user := v.Normalize(strings.TrimSpace(userAnswer))
	if user == "" {
		return false
	}

	return user == v.Normalize(correctAnswer)
}

// Normalize decomposes s, drops combining marks and lowercases the result.
func (v *AnswerValidator) Normalize(s string) string {
	// Transformers carry state, so a fresh chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToLower(out)
}
