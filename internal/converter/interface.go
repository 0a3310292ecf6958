package converter

import "context"

// Job holds the four paths of one conversion run. All fields are required.
type Job struct {
	Script  string
	Project string
	Video   string
	Audio   string
}

// Converter defines the interface for vdscript to cpf conversion
type Converter interface {
	Convert(ctx context.Context, job Job) error
	ConvertScript(ctx context.Context, scriptPath string) error
}
