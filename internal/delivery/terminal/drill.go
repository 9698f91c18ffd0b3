// Package terminal runs the conjugation drill over a line-oriented stream.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

const localUserID int64 = 1

type QuizService interface {
	Start(ctx context.Context, userID int64, sel entities.Selection) (*entities.QuizSession, error)
	Submit(ctx context.Context, userID int64, answer string) (*entities.AnswerResult, error)
	Abandon(ctx context.Context, userID int64) (*entities.QuizSession, error)
}

type ConjugationService interface {
	Paradigm(verb string, tense entities.Tense) ([]service.Form, error)
	Verbs() []string
}

// Drill asks prompts on out and reads one answer per line from in.
type Drill struct {
	quiz        QuizService
	conjugation ConjugationService
	in          *bufio.Scanner
	out         io.Writer
}

func NewDrill(quiz QuizService, conjugation ConjugationService, in io.Reader, out io.Writer) *Drill {
	return &Drill{
		quiz:        quiz,
		conjugation: conjugation,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run plays one quiz over sel. End of input stops the quiz early.
func (d *Drill) Run(ctx context.Context, sel entities.Selection) (*entities.QuizSession, error) {
	session, err := d.quiz.Start(ctx, localUserID, sel)
	if err != nil {
		return nil, err
	}

	d.printf("Quiz started: %d questions. Accents are optional.\n\n", session.Total())

	q, ok := session.CurrentQuestion()
	for ok {
		if err = ctx.Err(); err != nil {
			_, _ = d.quiz.Abandon(ctx, localUserID)
			return session, err
		}

		d.printf("[%d/%d] %s ", session.Current+1, session.Total(), q.Prompt())

		if !d.in.Scan() {
			if err = d.in.Err(); err != nil {
				return session, fmt.Errorf("read answer: %w", err)
			}
			stopped, abandonErr := d.quiz.Abandon(ctx, localUserID)
			if abandonErr != nil && !errors.Is(abandonErr, service.ErrSessionNotFound) {
				return session, abandonErr
			}
			if stopped != nil {
				session = stopped
			}
			d.printf("\nQuiz stopped after %d of %d questions. Score: %d/%d\n",
				session.Current, session.Total(), session.Score, session.Current)
			return session, nil
		}

		result, err := d.quiz.Submit(ctx, localUserID, d.in.Text())
		if err != nil {
			return session, err
		}

		if result.Answer.IsCorrect {
			d.printf("Correct!\n")
		} else {
			d.printf("Wrong! Correct answer: %s\n", result.Answer.CorrectAnswer)
		}

		if result.Completed || result.Next == nil {
			d.printf("\nQuiz completed! Score: %d/%d\n", result.Score, result.Total)
			return session, nil
		}
		q, ok = *result.Next, true
	}

	return session, nil
}

// Conjugate prints the paradigm of verb for each of tenses.
func (d *Drill) Conjugate(verb string, tenses []entities.Tense) error {
	for i, tense := range tenses {
		forms, err := d.conjugation.Paradigm(verb, tense)
		if err != nil {
			return err
		}

		if i > 0 {
			d.printf("\n")
		}
		d.printf("%s (%s)\n", verb, tense)
		for _, f := range forms {
			d.printf("  %-20s %s\n", f.Pronoun, f.Form)
		}
	}
	return nil
}

// ListVerbs prints the selectable verbs, one per line.
func (d *Drill) ListVerbs() {
	d.printf("%s\n", strings.Join(d.conjugation.Verbs(), "\n"))
}

func (d *Drill) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}
