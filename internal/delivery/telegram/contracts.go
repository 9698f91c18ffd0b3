package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/service"
)

// Sender is the part of *tgbotapi.BotAPI the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type QuizService interface {
	Start(ctx context.Context, userID int64, sel entities.Selection) (*entities.QuizSession, error)
	Current(ctx context.Context, userID int64) (*entities.QuizSession, entities.Question, error)
	Submit(ctx context.Context, userID int64, answer string) (*entities.AnswerResult, error)
	Abandon(ctx context.Context, userID int64) (*entities.QuizSession, error)
}

type SelectionService interface {
	Get(ctx context.Context, userID int64) entities.Selection
	ToggleVerb(ctx context.Context, userID int64, verb string) (entities.Selection, error)
	ToggleTense(ctx context.Context, userID int64, tense string) (entities.Selection, error)
	ToggleVosotros(ctx context.Context, userID int64) entities.Selection
	SelectAllVerbs(ctx context.Context, userID int64) entities.Selection
	ClearVerbs(ctx context.Context, userID int64) entities.Selection
	Verbs() []string
}

type ResultService interface {
	Summary(ctx context.Context, userID int64) (*service.ResultSummary, error)
}

type ConjugationService interface {
	Paradigm(verb string, tense entities.Tense) ([]service.Form, error)
}
