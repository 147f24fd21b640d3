package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pinx/internal/formatter"
	"github.com/desertthunder/pinx/internal/shared"
	"github.com/desertthunder/pinx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Add resolves the supplied path and runs the pin chain.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("path")
	if raw == "" {
		return fmt.Errorf("%w: a path or program name is required", shared.ErrMissingArgument)
	}

	// Position hints are accepted for interface compatibility but the OS
	// offers no reliable reordering primitive, so they are refused loudly
	// rather than silently ignored.
	if cmd.IsSet("position") {
		return fmt.Errorf("%w: the taskbar exposes no reliable ordering mechanism", shared.ErrUnsupported)
	}

	if label := cmd.String("label"); label != "" {
		r.logger.Debug("label accepted but not used in pin placement", "label", label)
	}

	path, err := r.resolver.Resolve(raw)
	if err != nil {
		return err
	}

	r.logger.Info("pinning", "target", path)
	result, err := r.engine.Pin(ctx, path)
	if err != nil {
		return err
	}

	if err := r.reportResult("pin", result); err != nil {
		return err
	}

	if result.StrategyUsed != "" {
		r.maybeRestartShell(ctx, cmd.Bool("no-restart"))
	}
	return nil
}

// Remove resolves the identifier against the current pins and runs the
// unpin chain.
func (r *Runner) Remove(ctx context.Context, cmd *cli.Command) error {
	identifier := cmd.StringArg("identifier")
	if identifier == "" {
		return fmt.Errorf("%w: a pinned item name or path is required", shared.ErrMissingArgument)
	}

	r.logger.Info("unpinning", "identifier", identifier)
	result, err := r.engine.Unpin(ctx, identifier)
	if err != nil {
		return err
	}

	if err := r.reportResult("unpin", result); err != nil {
		return err
	}

	r.maybeRestartShell(ctx, cmd.Bool("no-restart"))
	return nil
}

// List enumerates the current pins in the requested format.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	items, err := r.engine.Enumerate(ctx)
	if err != nil {
		return err
	}

	format := cmd.String("format")
	if cmd.Bool("json") {
		format = "json"
	}

	out, err := formatter.Export(items, format)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	return r.writePlain("%s", out)
}

// Find resolves an identifier to a single pinned item.
func (r *Runner) Find(ctx context.Context, cmd *cli.Command) error {
	identifier := cmd.StringArg("identifier")
	if identifier == "" {
		return fmt.Errorf("%w: an identifier is required", shared.ErrMissingArgument)
	}

	item, err := r.engine.Find(ctx, identifier)
	if err != nil {
		return err
	}

	if cmd.Bool("copy") {
		if err := r.copyText(item.Path); err != nil {
			r.logger.Warn("clipboard copy failed", "err", err)
		} else {
			r.logger.Debug("copied path to clipboard", "path", item.Path)
		}
	}

	if cmd.Bool("json") {
		return r.writeJSON(item, true)
	}
	return r.writePlain("%s\t%s\t%s\n", item.Name, item.Kind, item.Path)
}

// ConfigInit writes the embedded example configuration.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlain("wrote %s\n", path)
}

// TUI launches the interactive pin browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	model := ui.NewModel(ctx, r.engine)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
