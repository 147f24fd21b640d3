package sources

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/shared"
)

// LinkResolver turns a shortcut file into its target path.
type LinkResolver func(path string) (string, error)

// ShortcutSource scans the per-user pinned-shortcut folder. It is the
// highest-priority source: the folder reflects what explorer itself reads
// when it rebuilds the taskbar.
type ShortcutSource struct {
	dir     string
	resolve LinkResolver
	logger  *log.Logger
}

// NewShortcutSource creates a source over the given pin directory. A nil
// resolver uses the .lnk parser.
func NewShortcutSource(dir string, resolve LinkResolver, logger *log.Logger) *ShortcutSource {
	if resolve == nil {
		resolve = ResolveLink
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ShortcutSource{dir: dir, resolve: resolve, logger: logger}
}

func (s *ShortcutSource) Name() string { return "shortcut-folder" }

// Items resolves every shortcut in the folder to its link target. A
// shortcut that cannot be resolved is logged and skipped, never fatal.
func (s *ShortcutSource) Items(ctx context.Context) ([]models.PinnedItem, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var items []models.PinnedItem
	position := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return items, ctx.Err()
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".lnk") {
			continue
		}

		full := filepath.Join(s.dir, entry.Name())
		target, err := s.resolve(full)
		if err != nil {
			s.logger.Debug("skipping unresolvable shortcut", "shortcut", full, "err", err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		items = append(items, models.PinnedItem{
			Name:     name,
			Path:     target,
			Kind:     kindOfTarget(target),
			Position: position,
		})
		position++
	}

	return items, nil
}

// kindOfTarget classifies a resolved target, consulting the filesystem for
// the folder case since suffix alone cannot distinguish a directory from an
// extensionless file.
func kindOfTarget(target string) models.ItemKind {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return models.KindFolder
	}
	return models.KindOf(target)
}
