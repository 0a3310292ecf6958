package converter

import (
	"cutflow/internal/config"
	"cutflow/internal/cpf"
	"cutflow/internal/logger"
	"cutflow/internal/vdscript"
)

type implConverter struct {
	cfg    *config.Config
	parser vdscript.Parser
	writer cpf.Writer
	logger logger.Logger
}

// New creates a new Converter instance
func New(cfg *config.Config, parser vdscript.Parser, writer cpf.Writer, log logger.Logger) Converter {
	return &implConverter{
		cfg:    cfg,
		parser: parser,
		writer: writer,
		logger: log,
	}
}
