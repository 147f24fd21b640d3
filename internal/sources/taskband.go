package sources

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/shared"
)

// TaskbandSource reads the classic Taskband Favorites blob. The on-disk
// layout is undocumented, so this source only harvests the path strings it
// can recognize; an unreadable or empty value yields no items and no error.
type TaskbandSource struct {
	reg    RegistryReader
	logger *log.Logger
}

func NewTaskbandSource(reg RegistryReader, logger *log.Logger) *TaskbandSource {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &TaskbandSource{reg: reg, logger: logger}
}

func (s *TaskbandSource) Name() string { return "taskband-registry" }

func (s *TaskbandSource) Items(ctx context.Context) ([]models.PinnedItem, error) {
	if s.reg == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := s.reg.BinaryValue(taskbandKey, taskbandFavorites)
	if err != nil {
		s.logger.Debug("taskband favorites unavailable", "err", err)
		return nil, nil
	}

	paths := scanUTF16Paths(blob)
	s.logger.Debug("scanned taskband blob", "bytes", len(blob), "paths", len(paths))
	return itemsFromPaths(paths), nil
}
