package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot                Sender
	logger             *zap.Logger
	userService        UserService
	quizService        QuizService
	selectionService   SelectionService
	resultService      ResultService
	conjugationService ConjugationService
}

func NewHandler(
	bot Sender,
	logger *zap.Logger,
	userService UserService,
	quizService QuizService,
	selectionService SelectionService,
	resultService ResultService,
	conjugationService ConjugationService,
) *Handler {
	return &Handler{
		bot:                bot,
		logger:             logger,
		userService:        userService,
		quizService:        quizService,
		selectionService:   selectionService,
		resultService:      resultService,
		conjugationService: conjugationService,
	}
}

// Run handles updates one at a time until ctx is done or updates is closed.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if err := h.userService.EnsureUser(ctx, userID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		var fn HandlerFunc

		switch update.Message.Command() {
		case "start":
			fn = h.startHandler()
		case "help":
			fn = h.helpHandler()
		case "verbs":
			fn = h.verbsHandler(userID)
		case "tenses":
			fn = h.tensesHandler(userID)
		case "quiz":
			fn = h.quizHandler(userID)
		case "stop":
			fn = h.stopHandler(userID)
		case "stats":
			fn = h.statsHandler(userID)
		case "conjugate":
			fn = h.conjugateHandler(update.Message.CommandArguments())
		default:
			fn = h.textHandler(msgUnknownCommand)
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.answerHandler(userID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// answerCallback removes the loading indicator from the pressed button.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer failed", zap.Error(err))
	}
}
