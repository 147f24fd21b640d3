// package sources implements the independent mechanisms that discover
// currently pinned taskbar items
//
// Shortcut folder, Taskband registry blob, CloudStore pinned list
package sources

import (
	"context"

	"github.com/desertthunder/pinx/internal/models"
)

// Source is one independent enumeration mechanism. Implementations are
// best-effort: an empty result is not an error, and a source that cannot
// read its backing store returns what it has plus the error for logging.
type Source interface {
	// Name identifies the source in logs and dedup attribution.
	Name() string

	// Items returns the pinned items this source can see right now.
	Items(ctx context.Context) ([]models.PinnedItem, error)
}
