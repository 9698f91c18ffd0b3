// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

const (
	msgWelcome = "<b>¡Hola!</b> I drill Spanish verb conjugations.\n\n" +
		"1. Pick verbs with /verbs\n" +
		"2. Pick tenses with /tenses\n" +
		"3. Start with /quiz and type each form\n\n" +
		"Accents are optional: <i>hable</i> counts for <i>hablé</i>."
	msgHelp = "<b>Commands</b>\n\n" +
		"/verbs — choose verbs\n" +
		"/tenses — choose tenses and the vosotros form\n" +
		"/quiz — start a quiz\n" +
		"/stop — stop the current quiz\n" +
		"/stats — your results\n" +
		"/conjugate VERB [TENSE] — show a conjugation table"

	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command. See /help."
	msgNoActiveQuiz    = "There is no quiz running. Start one with /quiz."
	msgEmptySelection  = "Pick at least one verb (/verbs) and one tense (/tenses) first."
	msgConjugateUsage  = "Usage: /conjugate hablar [present|preterite|imperfect]"
	msgUnknownVerb     = "I don't know that verb. See /verbs for the list."
	msgUnknownTense    = "Unknown tense. Use present, preterite or imperfect."
	msgNoResults       = "No finished quizzes yet. Start one with /quiz."
	msgSelectionFailed = "That option is not available."
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newHTMLEdit(chatID int64, msgID int, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, kb)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

// formatPrompt renders the question with its position in the quiz.
func formatPrompt(q entities.Question, number, total int) string {
	return fmt.Sprintf("<b>%d/%d</b> · %s", number, total, html.EscapeString(q.Prompt()))
}

// formatFeedback renders the verdict for a submitted answer.
func formatFeedback(a entities.QuizAnswer) string {
	if a.IsCorrect {
		if a.UserAnswer != a.CorrectAnswer {
			return fmt.Sprintf("✅ Correct! (<b>%s</b>)", html.EscapeString(a.CorrectAnswer))
		}
		return "✅ Correct!"
	}
	return fmt.Sprintf("❌ Wrong! Correct answer: <b>%s</b>", html.EscapeString(a.CorrectAnswer))
}

func formatCompleted(score, total int) string {
	return fmt.Sprintf("🏁 Quiz completed! Score: <b>%d/%d</b>", score, total)
}

func formatStopped(s *entities.QuizSession) string {
	return fmt.Sprintf("Quiz stopped after %d of %d questions. Score: %d/%d.",
		s.Current, s.Total(), s.Score, s.Current)
}

// formatStarted renders the quiz intro followed by the first prompt.
func formatStarted(s *entities.QuizSession) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 Quiz started: %d questions.\n", s.Total()))
	sb.WriteString("Type each form. Send /stop to quit.\n\n")
	if q, ok := s.CurrentQuestion(); ok {
		sb.WriteString(formatPrompt(q, s.Current+1, s.Total()))
	}
	return sb.String()
}

// formatSelection summarizes a pending selection.
func formatSelection(sel entities.Selection) string {
	verbs := "none"
	if len(sel.Verbs) > 0 {
		verbs = strings.Join(sel.Verbs, ", ")
	}
	tenses := "none"
	if len(sel.Tenses) > 0 {
		tenses = strings.Join(sel.TenseNames(), ", ")
	}
	vosotros := "no"
	if sel.IncludeVosotros {
		vosotros = "yes"
	}

	return fmt.Sprintf(
		"<b>Verbs:</b> %s\n<b>Tenses:</b> %s\n<b>Vosotros:</b> %s",
		html.EscapeString(verbs),
		html.EscapeString(tenses),
		vosotros,
	)
}

func formatVerbScreen(sel entities.Selection) string {
	return "📚 <b>Choose verbs</b>\n\n" + formatSelection(sel)
}

func formatTenseScreen(sel entities.Selection) string {
	return "🕰 <b>Choose tenses</b>\n\n" + formatSelection(sel)
}

func formatSummary(s *service.ResultSummary) string {
	best := "—"
	if s.BestTotal > 0 {
		best = fmt.Sprintf("%d/%d", s.BestScore, s.BestTotal)
	}

	return fmt.Sprintf(
		"📊 <b>Your results</b>\n\n"+
			"🏁 Quizzes completed: %d\n"+
			"✍️ Answers: %d\n"+
			"✅ Correct: %d\n"+
			"🎯 Accuracy: %.1f%%\n"+
			"🏆 Best quiz: %s",
		s.Quizzes, s.Answered, s.Correct, s.Accuracy, best,
	)
}

func formatParadigm(verb string, tense entities.Tense, forms []service.Form) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b> · %s\n", html.EscapeString(verb), tense))
	for _, f := range forms {
		sb.WriteString(fmt.Sprintf("\n%s — <b>%s</b>", html.EscapeString(string(f.Pronoun)), html.EscapeString(f.Form)))
	}
	return sb.String()
}
