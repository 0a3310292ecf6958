package cpf

import (
	"cutflow/internal/logger"
)

type implWriter struct {
	logger logger.Logger
}

// New creates a new Writer instance
func New(log logger.Logger) Writer {
	return &implWriter{
		logger: log,
	}
}
