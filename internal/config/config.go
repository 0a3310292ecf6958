package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig holds the four parameters of a one-shot conversion. All four
// are mandatory; there are no fallback values.
type PathsConfig struct {
	Script  string `yaml:"script"`
	Project string `yaml:"project"`
	Video   string `yaml:"video"`
	Audio   string `yaml:"audio"`
}

// WatchConfig configures watch mode. Project and media paths are derived
// from each script's basename: <output>/<base>.cpf for the project and
// <media_dir>/<base><ext> for the referenced streams.
type WatchConfig struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	MediaDir      string `yaml:"media_dir"`
	VideoExt      string `yaml:"video_ext"`
	AudioExt      string `yaml:"audio_ext"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// ValidateConvert checks the one-shot conversion parameters
func (c *Config) ValidateConvert() error {
	if c.Paths.Script == "" {
		return fmt.Errorf("paths.script is required")
	}
	if c.Paths.Project == "" {
		return fmt.Errorf("paths.project is required")
	}
	if c.Paths.Video == "" {
		return fmt.Errorf("paths.video is required")
	}
	if c.Paths.Audio == "" {
		return fmt.Errorf("paths.audio is required")
	}

	return nil
}

// ValidateWatch checks the watch-mode parameters and applies defaults for
// the optional ones
func (c *Config) ValidateWatch() error {
	if c.Watch.Input == "" {
		return fmt.Errorf("watch.input is required")
	}
	if c.Watch.Output == "" {
		return fmt.Errorf("watch.output is required")
	}
	if c.Watch.MediaDir == "" {
		return fmt.Errorf("watch.media_dir is required")
	}

	if c.Watch.VideoExt == "" {
		c.Watch.VideoExt = ".m2v"
	}
	if c.Watch.AudioExt == "" {
		c.Watch.AudioExt = ".mp2"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}

	return nil
}
