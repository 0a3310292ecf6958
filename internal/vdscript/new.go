package vdscript

import (
	"cutflow/internal/logger"
)

type implParser struct {
	logger logger.Logger
}

// New creates a new Parser instance
func New(log logger.Logger) Parser {
	return &implParser{
		logger: log,
	}
}
