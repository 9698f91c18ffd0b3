package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc

	switch data.Action {
	case actionVerb:
		fn = h.verbCallback(userID, msgID, data)
	case actionTense:
		fn = h.tenseCallback(userID, msgID, data.param(0))
	case actionVosotros:
		fn = h.vosotrosCallback(userID, msgID)
	case actionQuiz:
		switch data.param(0) {
		case quizStart:
			fn = h.quizHandler(userID)
		case quizStop:
			fn = h.stopHandler(userID)
		}
	case actionStats:
		fn = h.statsHandler(userID)
	}

	if fn == nil {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	err := fn(ctx, chatID)
	if errors.Is(err, service.ErrInvalidSelection) {
		h.answerCallback(cb.ID, msgSelectionFailed)
		return
	}

	h.answerCallback(cb.ID, "")

	if err != nil {
		h.logger.Error("handle callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
	}
}

func (h *Handler) verbCallback(userID int64, msgID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var (
			sel entities.Selection
			err error
		)

		switch data.param(0) {
		case verbToggle:
			sel, err = h.selectionService.ToggleVerb(ctx, userID, data.param(1))
		case verbAll:
			sel = h.selectionService.SelectAllVerbs(ctx, userID)
		case verbNone:
			sel = h.selectionService.ClearVerbs(ctx, userID)
		default:
			return service.ErrInvalidSelection
		}
		if err != nil {
			return err
		}

		edit := newHTMLEdit(chatID, msgID, formatVerbScreen(sel), buildVerbKeyboard(h.selectionService.Verbs(), sel))
		return h.send(edit)
	}
}

func (h *Handler) tenseCallback(userID int64, msgID int, tense string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sel, err := h.selectionService.ToggleTense(ctx, userID, tense)
		if err != nil {
			return err
		}

		return h.send(newHTMLEdit(chatID, msgID, formatTenseScreen(sel), buildTenseKeyboard(sel)))
	}
}

func (h *Handler) vosotrosCallback(userID int64, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sel := h.selectionService.ToggleVosotros(ctx, userID)
		return h.send(newHTMLEdit(chatID, msgID, formatTenseScreen(sel), buildTenseKeyboard(sel)))
	}
}
