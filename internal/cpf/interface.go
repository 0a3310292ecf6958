package cpf

import (
	"context"
	"errors"

	"cutflow/internal/cutlist"
)

// ErrProjectExists is reported when the destination project file is already
// present. The write is abandoned without touching the existing file.
var ErrProjectExists = errors.New("project file already exists")

// Writer defines the interface for producing Cuttermaran project files
type Writer interface {
	Write(ctx context.Context, projectPath string, registry cutlist.Registry, intervals []cutlist.Interval) error
}
