package taskbar

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/platform"
	"github.com/desertthunder/pinx/internal/shared"
	"github.com/desertthunder/pinx/internal/sources"
)

// Engine orchestrates pin operations: it merges the enumeration sources,
// resolves identifiers, and drives the strategy chains. One engine serves
// one CLI invocation; it holds no state between calls and does not own the
// OS pin store it mutates.
type Engine struct {
	sources []sources.Source
	ops     Ops
	facts   platform.Facts
	logger  *log.Logger
}

// EngineOpts contains the collaborators for a new [Engine].
type EngineOpts struct {
	Sources []sources.Source
	Ops     Ops
	Facts   platform.Facts
	Logger  *log.Logger
}

// NewEngine creates an Engine with the provided collaborators.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &Engine{
		sources: opts.Sources,
		ops:     opts.Ops,
		facts:   opts.Facts,
		logger:  opts.Logger,
	}
}

// Enumerate queries every source in priority order and merges the results
// into one deduplicated sequence. The merge is first-writer-wins keyed by
// the case-folded path, so when sources disagree about an item's name or
// kind the higher-priority source is believed. Output order is insertion
// order; the OS exposes no reliable positional truth to sort by. A failing
// source contributes nothing but never aborts the pass.
func (e *Engine) Enumerate(ctx context.Context) ([]models.PinnedItem, error) {
	merged := make(map[string]int)
	var items []models.PinnedItem

	for _, source := range e.sources {
		found, err := source.Items(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return items, ctx.Err()
			}
			e.logger.Debug("enumeration source failed", "source", source.Name(), "err", err)
			continue
		}

		kept := 0
		for _, item := range found {
			key := item.Key()
			if _, exists := merged[key]; exists {
				continue
			}
			merged[key] = len(items)
			items = append(items, item)
			kept++
		}
		e.logger.Debug("enumerated source", "source", source.Name(), "found", len(found), "kept", kept)
	}

	return items, nil
}

// Pin pins the canonical path, short-circuiting idempotently when the path
// is already present. The returned result is always structured; err is
// reserved for a broken invocation, not for strategy failures.
func (e *Engine) Pin(ctx context.Context, path string) (*models.OperationResult, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", shared.ErrInvalidInput)
	}

	current, err := e.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	key := models.Fold(path)
	for _, item := range current {
		if item.Key() == key {
			e.logger.Debug("already pinned", "path", path)
			return &models.OperationResult{Succeeded: true}, nil
		}
	}

	return runChain(ctx, e.facts, pinStrategies(e.ops), path, e.logger), nil
}

// Unpin resolves the identifier against the current enumeration and runs
// the unpin chain against the matched canonical path. An identifier that
// matches nothing fails fast with [shared.ErrNotFound] before any strategy
// can run.
func (e *Engine) Unpin(ctx context.Context, identifier string) (*models.OperationResult, error) {
	current, err := e.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := Match(current, identifier)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not pinned", shared.ErrNotFound, identifier)
	}

	e.logger.Debug("matched unpin target", "identifier", identifier, "path", item.Path)
	return runChain(ctx, e.facts, unpinStrategies(e.ops), item.Path, e.logger), nil
}

// Find resolves an identifier to a single pinned item.
func (e *Engine) Find(ctx context.Context, identifier string) (*models.PinnedItem, error) {
	current, err := e.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := Match(current, identifier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrNotFound, identifier)
	}
	return item, nil
}
