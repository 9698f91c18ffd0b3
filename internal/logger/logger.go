package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// NewQuiet returns a logger for interactive hosts that only reports warnings and above.
func NewQuiet(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return zcfg.Build()
}
