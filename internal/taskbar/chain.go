package taskbar

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/platform"
)

// Strategy is one concrete technique for achieving a pin or unpin effect.
// Strategies are stateless; the ordered lists compiled in [pinStrategies]
// and [unpinStrategies] are the only thing that owns them.
type Strategy struct {
	// Name appears in results and diagnostics.
	Name string

	// Applicable gates the strategy on detected OS facts. Nil means always
	// applicable.
	Applicable func(platform.Facts) bool

	// Execute performs the side effect. Any returned error becomes a
	// diagnostic and the chain advances.
	Execute func(ctx context.Context, target string) error
}

// runChain walks the strategy list in order: skip inapplicable entries,
// stop at the first success, collect a diagnostic per failure. At most one
// strategy ever takes effect, which is the guarantee against duplicate
// pins. Prior strategies' partial effects are not rolled back; the
// underlying mechanisms offer nothing transactional to roll back with.
func runChain(ctx context.Context, facts platform.Facts, strategies []Strategy, target string, logger *log.Logger) *models.OperationResult {
	var diags []models.Diagnostic

	for i, strategy := range strategies {
		if strategy.Applicable != nil && !strategy.Applicable(facts) {
			logger.Debug("strategy inapplicable", "strategy", strategy.Name, "build", facts.Build)
			continue
		}

		logger.Debug("trying strategy", "index", i, "strategy", strategy.Name)
		if err := strategy.Execute(ctx, target); err != nil {
			logger.Debug("strategy failed", "strategy", strategy.Name, "err", err)
			diags = append(diags, models.Diagnostic{Index: i, Name: strategy.Name, Reason: err.Error()})
			continue
		}

		return &models.OperationResult{
			Succeeded:    true,
			StrategyUsed: strategy.Name,
			Diagnostics:  diags,
		}
	}

	return &models.OperationResult{Succeeded: false, Diagnostics: diags}
}
