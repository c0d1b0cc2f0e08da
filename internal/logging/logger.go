package logging

import (
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
	"go.uber.org/zap"
)

// New builds the application logger: human readable output for local runs,
// JSON everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == config.EnvLocal {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
