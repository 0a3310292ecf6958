package converter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cutflow/internal/cpf"
	"cutflow/internal/cutlist"
)

// Convert runs one conversion: extract the cut ranges from the script, then
// render the project file referencing the given media tracks.
func (c *implConverter) Convert(ctx context.Context, job Job) error {
	c.logger.Info(ctx, "Converting %s", job.Script)

	intervals, err := c.parser.ParseFile(ctx, job.Script)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	c.logger.Info(ctx, "Extracted %d cut range(s)", len(intervals))

	registry := cutlist.NewRegistry(job.Video, job.Audio)
	if err := c.writer.Write(ctx, job.Project, registry, intervals); err != nil {
		return fmt.Errorf("write project: %w", err)
	}

	c.logger.Info(ctx, "Project file saved as %s", job.Project)
	return nil
}

// ConvertScript is the watch-mode entry point. Project and media paths are
// derived from the script basename and the watch configuration. A project
// that already exists is skipped with a warning so one leftover file does
// not stall the pipeline.
func (c *implConverter) ConvertScript(ctx context.Context, scriptPath string) error {
	base := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))

	job := Job{
		Script:  scriptPath,
		Project: filepath.Join(c.cfg.Watch.Output, base+".cpf"),
		Video:   filepath.Join(c.cfg.Watch.MediaDir, base+c.cfg.Watch.VideoExt),
		Audio:   filepath.Join(c.cfg.Watch.MediaDir, base+c.cfg.Watch.AudioExt),
	}

	err := c.Convert(ctx, job)
	if errors.Is(err, cpf.ErrProjectExists) {
		c.logger.Warn(ctx, "Project already exists, skipping: %s", job.Project)
		return nil
	}
	return err
}
