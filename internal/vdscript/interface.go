package vdscript

import (
	"context"
	"io"

	"cutflow/internal/cutlist"
)

// Parser defines the interface for extracting cut ranges from vdscript text
type Parser interface {
	Parse(ctx context.Context, r io.Reader) ([]cutlist.Interval, error)
	ParseFile(ctx context.Context, path string) ([]cutlist.Interval, error)
}
