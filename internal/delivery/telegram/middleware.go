package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler failures and answers the chat instead of
// propagating them to the update loop. Panics are turned into errors.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err == nil {
				return
			}

			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, userMessageFor(err))
			err = nil
		}()

		return fn(ctx, chatID)
	}
}

// userMessageFor picks the reply shown for a handler error.
func userMessageFor(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidSelection):
		return msgSelectionFailed
	case errors.Is(err, entities.ErrUnknownVerb):
		return msgUnknownVerb
	default:
		// includes entities.ErrMissingConjugation
		return msgInternalError
	}
}
