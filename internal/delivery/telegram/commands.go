package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

func (h *Handler) textHandler(text string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, text))
	}
}

func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, msgWelcome+"\n\n"+msgHelp))
	}
}

func (h *Handler) helpHandler() HandlerFunc {
	return h.textHandler(msgHelp)
}

// verbsHandler shows the verb multi-select keyboard.
func (h *Handler) verbsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sel := h.selectionService.Get(ctx, userID)

		msg := newHTMLMessage(chatID, formatVerbScreen(sel))
		msg.ReplyMarkup = buildVerbKeyboard(h.selectionService.Verbs(), sel)
		return h.send(msg)
	}
}

// tensesHandler shows the tense multi-select keyboard.
func (h *Handler) tensesHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sel := h.selectionService.Get(ctx, userID)

		msg := newHTMLMessage(chatID, formatTenseScreen(sel))
		msg.ReplyMarkup = buildTenseKeyboard(sel)
		return h.send(msg)
	}
}

// quizHandler starts a quiz from the user's current selection.
func (h *Handler) quizHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sel := h.selectionService.Get(ctx, userID)

		session, err := h.quizService.Start(ctx, userID, sel)
		switch {
		case errors.Is(err, service.ErrNoQuestionsAvailable):
			return h.send(newHTMLMessage(chatID, msgEmptySelection))
		case errors.Is(err, service.ErrInvalidSelection):
			return h.send(newHTMLMessage(chatID, msgSelectionFailed))
		case err != nil:
			return err
		}

		msg := newHTMLMessage(chatID, formatStarted(session))
		msg.ReplyMarkup = buildQuizKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) stopHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.quizService.Abandon(ctx, userID)
		if errors.Is(err, service.ErrSessionNotFound) {
			return h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
		}
		if err != nil {
			return err
		}

		h.logger.Info("quiz stopped",
			zap.Int64("user_id", userID),
			zap.String("session_id", session.ID.String()),
		)

		return h.send(newHTMLMessage(chatID, formatStopped(session)))
	}
}

func (h *Handler) statsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.resultService.Summary(ctx, userID)
		if err != nil {
			return err
		}

		if summary.Quizzes == 0 {
			return h.send(newHTMLMessage(chatID, msgNoResults))
		}

		return h.send(newHTMLMessage(chatID, formatSummary(summary)))
	}
}

// conjugateHandler shows a verb's paradigm. Without a tense every tense is shown.
func (h *Handler) conjugateHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		fields := strings.Fields(strings.ToLower(args))
		if len(fields) == 0 || len(fields) > 2 {
			return h.send(newHTMLMessage(chatID, msgConjugateUsage))
		}

		verb := fields[0]
		tenses := entities.Tenses
		if len(fields) == 2 {
			tense, ok := entities.ParseTense(fields[1])
			if !ok {
				return h.send(newHTMLMessage(chatID, msgUnknownTense))
			}
			tenses = []entities.Tense{tense}
		}

		blocks := make([]string, 0, len(tenses))
		for _, tense := range tenses {
			forms, err := h.conjugationService.Paradigm(verb, tense)
			if errors.Is(err, entities.ErrUnknownVerb) {
				return h.send(newHTMLMessage(chatID, msgUnknownVerb))
			}
			if err != nil {
				return err
			}
			blocks = append(blocks, formatParadigm(verb, tense, forms))
		}

		return h.send(newHTMLMessage(chatID, strings.Join(blocks, "\n\n")))
	}
}

// answerHandler treats a plain text message as the answer to the current question.
func (h *Handler) answerHandler(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		result, err := h.quizService.Submit(ctx, userID, text)
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrSessionCompleted) {
			return h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
		}
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, "")
		if result.Completed || result.Next == nil {
			msg.Text = formatFeedback(result.Answer) + "\n\n" + formatCompleted(result.Score, result.Total)
			msg.ReplyMarkup = buildQuizResultKeyboard()
		} else {
			msg.Text = formatFeedback(result.Answer) + "\n\n" + formatPrompt(*result.Next, result.Answered+1, result.Total)
			msg.ReplyMarkup = buildQuizKeyboard()
		}

		return h.send(msg)
	}
}
