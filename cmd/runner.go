package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/platform"
	"github.com/desertthunder/pinx/internal/resolver"
	"github.com/desertthunder/pinx/internal/shared"
	"github.com/desertthunder/pinx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Engine is the orchestration surface the commands drive.
type Engine interface {
	Pin(ctx context.Context, path string) (*models.OperationResult, error)
	Unpin(ctx context.Context, identifier string) (*models.OperationResult, error)
	Enumerate(ctx context.Context) ([]models.PinnedItem, error)
	Find(ctx context.Context, identifier string) (*models.PinnedItem, error)
}

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	engine   Engine
	resolver *resolver.Resolver
	logger   *log.Logger
	output   io.Writer
	palette  *ui.Palette
	restart  func(context.Context) error
	copyText func(string) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Engine   Engine
	Resolver *resolver.Resolver
	Logger   *log.Logger
	Output   io.Writer
	Restart  func(context.Context) error
	CopyText func(string) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Resolver == nil {
		opts.Resolver = resolver.New(resolver.Opts{ProbeDirs: platform.ProbeDirs()})
	}
	if opts.Restart == nil {
		opts.Restart = platform.RestartShell
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}

	return &Runner{
		config:   opts.Config,
		engine:   opts.Engine,
		resolver: opts.Resolver,
		logger:   opts.Logger,
		output:   opts.Output,
		palette:  ui.Styles(),
		restart:  opts.Restart,
		copyText: opts.CopyText,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		addCommand, removeCommand, listCommand, findCommand, configCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// paint applies a palette style only when color output is enabled.
func (r *Runner) paint(style func(string) string, text string) string {
	if !r.config.Output.Color {
		return text
	}
	return style(text)
}

// reportResult renders an operation result and converts an exhausted chain
// into an error so main exits nonzero.
func (r *Runner) reportResult(verb string, result *models.OperationResult) error {
	if result.Succeeded {
		if result.StrategyUsed == "" {
			r.writePlain("%s\n", r.paint(r.palette.OK, fmt.Sprintf("%s: already in the requested state", verb)))
		} else {
			r.writePlain("%s\n", r.paint(r.palette.OK, fmt.Sprintf("%s succeeded via %s", verb, result.StrategyUsed)))
		}
		for _, diag := range result.Diagnostics {
			r.writePlain("%s\n", r.paint(r.palette.Note, fmt.Sprintf("  earlier attempt %s: %s", diag.Name, diag.Reason)))
		}
		return nil
	}

	r.writePlain("%s\n", r.paint(r.palette.Fail, fmt.Sprintf("%s failed; every applicable strategy was exhausted", verb)))
	for _, diag := range result.Diagnostics {
		r.writePlain("%s\n", r.paint(r.palette.Warn, fmt.Sprintf("  [%d] %s: %s", diag.Index, diag.Name, diag.Reason)))
	}
	return fmt.Errorf("%w: %d strategies failed", shared.ErrAllStrategiesExhausted, len(result.Diagnostics))
}

// maybeRestartShell refreshes the shell surface after a successful
// mutation. Failures are logged, never fatal: the pin took effect and will
// show up on the next natural shell restart.
func (r *Runner) maybeRestartShell(ctx context.Context, noRestart bool) {
	if noRestart || !r.config.Taskbar.RestartShell {
		r.logger.Debug("shell restart skipped")
		return
	}
	if err := r.restart(ctx); err != nil {
		r.logger.Warn("shell restart failed; the change appears after the next restart", "err", err)
	}
}
