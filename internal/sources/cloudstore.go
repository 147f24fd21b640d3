package sources

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/platform"
	"github.com/desertthunder/pinx/internal/shared"
)

// CloudStoreSource reads the pinned-list cache key the newer shell
// generation maintains. Inapplicable builds yield nothing: the key simply
// does not exist before Windows 11 moved the pinned list there.
type CloudStoreSource struct {
	reg    RegistryReader
	facts  platform.Facts
	logger *log.Logger
}

func NewCloudStoreSource(reg RegistryReader, facts platform.Facts, logger *log.Logger) *CloudStoreSource {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CloudStoreSource{reg: reg, facts: facts, logger: logger}
}

func (s *CloudStoreSource) Name() string { return "cloudstore" }

func (s *CloudStoreSource) Items(ctx context.Context) ([]models.PinnedItem, error) {
	if s.reg == nil || !s.facts.NewerShell() {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys, err := s.reg.SubKeys(cloudStoreCache)
	if err != nil {
		s.logger.Debug("cloud store cache unavailable", "err", err)
		return nil, nil
	}

	var items []models.PinnedItem
	for _, key := range keys {
		if !strings.Contains(strings.ToLower(key), pinnedListMarker) {
			continue
		}

		blob, err := s.reg.BinaryValue(cloudStoreCache+`\`+key+`\Current`, "Data")
		if err != nil {
			s.logger.Debug("pinned list data unreadable", "key", key, "err", err)
			continue
		}

		paths := scanUTF16Paths(blob)
		s.logger.Debug("scanned pinned list blob", "key", key, "paths", len(paths))
		items = append(items, itemsFromPaths(paths)...)
	}

	return items, nil
}
