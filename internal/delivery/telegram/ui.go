package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

const verbsPerRow = 3

func checkLabel(on bool, label string) string {
	if on {
		return "✅ " + label
	}
	return "▫️ " + label
}

// buildVerbKeyboard builds the verb multi-select keyboard.
func buildVerbKeyboard(verbs []string, sel entities.Selection) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for _, v := range verbs {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(checkLabel(sel.HasVerb(v), v), buildVerbToggleCallback(v)))
		if len(row) == verbsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("☑️ All", buildVerbAllCallback()),
			tgbotapi.NewInlineKeyboardButtonData("✖️ None", buildVerbNoneCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start quiz", buildQuizStartCallback()),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildTenseKeyboard builds the tense multi-select keyboard with the vosotros toggle.
func buildTenseKeyboard(sel entities.Selection) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range entities.Tenses {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(checkLabel(sel.HasTense(t), string(t)), buildTenseCallback(string(t))),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(checkLabel(sel.IncludeVosotros, "Include vosotros"), buildVosotrosCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start quiz", buildQuizStartCallback()),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizKeyboard is attached to prompts while a quiz runs.
func buildQuizKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", buildQuizStopCallback()),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My results", buildStatsCallback()),
		),
	)
}
