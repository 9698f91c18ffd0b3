package entities

import "fmt"

// Question is a single drill prompt: conjugate Verb for Pronoun in Tense.
type Question struct {
	Verb    string
	Tense   Tense
	Pronoun Pronoun
}

// Prompt renders the question as shown to the user.
func (q Question) Prompt() string {
	return fmt.Sprintf("%s form of %s in %s:", q.Pronoun, q.Verb, q.Tense)
}
