package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"

	"cutflow/internal/config"
	"cutflow/internal/converter"
	"cutflow/internal/cpf"
	"cutflow/internal/logger"
	"cutflow/internal/vdscript"
	"cutflow/internal/watcher"
)

type cliArgs struct {
	Script   string `arg:"positional" help:"path to the source .vdscript file"`
	Project  string `arg:"-p,--project" help:"path for the output .cpf project file"`
	Video    string `arg:"-v,--video" help:"video file the project references"`
	Audio    string `arg:"-a,--audio" help:"audio file the project references"`
	Config   string `arg:"-c,--config" help:"YAML configuration file"`
	Watch    bool   `arg:"-w,--watch" help:"watch a directory for new cut lists (requires --config)"`
	LogLevel string `arg:"--log-level" help:"debug, info, warn or error"`
}

func (cliArgs) Description() string {
	return "cutflow converts VirtualDub .vdscript cut lists into Cuttermaran .cpf project files"
}

func main() {
	ctx := context.Background()

	var args cliArgs
	arg.MustParse(&args)

	cfg, err := buildConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logLevel(args, cfg))

	parser := vdscript.New(log)
	writer := cpf.New(log)
	conv := converter.New(cfg, parser, writer, log)

	if args.Watch {
		if err := runWatch(ctx, cfg, conv, log); err != nil {
			log.Error(ctx, "%v", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.ValidateConvert(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid arguments: %v\n", err)
		os.Exit(1)
	}

	err = conv.Convert(ctx, converter.Job{
		Script:  cfg.Paths.Script,
		Project: cfg.Paths.Project,
		Video:   cfg.Paths.Video,
		Audio:   cfg.Paths.Audio,
	})
	if err != nil {
		if errors.Is(err, cpf.ErrProjectExists) {
			log.Error(ctx, "The file %s already exists. Choose a different filename or remove the existing file.", cfg.Paths.Project)
		} else {
			log.Error(ctx, "Conversion failed: %v", err)
		}
		os.Exit(1)
	}
}

// buildConfig loads the optional YAML config file and lets command-line
// flags override its values. The four conversion paths have no defaults.
func buildConfig(args cliArgs) (*config.Config, error) {
	cfg := &config.Config{}
	if args.Config != "" {
		loaded, err := config.Load(args.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if args.Script != "" {
		cfg.Paths.Script = args.Script
	}
	if args.Project != "" {
		cfg.Paths.Project = args.Project
	}
	if args.Video != "" {
		cfg.Paths.Video = args.Video
	}
	if args.Audio != "" {
		cfg.Paths.Audio = args.Audio
	}

	return cfg, nil
}

func logLevel(args cliArgs, cfg *config.Config) string {
	if args.LogLevel != "" {
		return args.LogLevel
	}
	if cfg.Logging.Level != "" {
		return cfg.Logging.Level
	}
	return "info"
}

// runWatch monitors the configured input directory until SIGINT/SIGTERM,
// converting each new cut list as it appears.
func runWatch(ctx context.Context, cfg *config.Config, conv converter.Converter, log logger.Logger) error {
	if err := cfg.ValidateWatch(); err != nil {
		return fmt.Errorf("invalid watch config: %w", err)
	}

	if err := os.MkdirAll(cfg.Watch.Output, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", cfg.Watch.Output, err)
	}

	w, err := watcher.New(cfg.Watch.Input, conv.ConvertScript, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "cutflow is ready")
	log.Info(ctx, "Monitoring: %s", cfg.Watch.Input)
	log.Info(ctx, "Output: %s", cfg.Watch.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	cancel()
	log.Info(ctx, "cutflow stopped")
	return nil
}
