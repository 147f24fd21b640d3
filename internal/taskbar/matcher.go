package taskbar

import (
	"strings"

	"github.com/desertthunder/pinx/internal/models"
)

// Match resolves an identifier against an enumerated item set. Rules apply
// in priority order, each scanning the whole set before the next is tried:
//
//  1. name equals, case-insensitive
//  2. path equals, case-insensitive
//  3. name contains
//  4. path contains
//
// First match wins within a rule; ties break by enumeration order. Pure
// function, no side effects.
func Match(items []models.PinnedItem, identifier string) (*models.PinnedItem, bool) {
	if identifier == "" {
		return nil, false
	}
	folded := strings.ToLower(identifier)

	rules := []func(models.PinnedItem) bool{
		func(it models.PinnedItem) bool { return strings.ToLower(it.Name) == folded },
		func(it models.PinnedItem) bool { return models.Fold(it.Path) == models.Fold(identifier) },
		func(it models.PinnedItem) bool { return strings.Contains(strings.ToLower(it.Name), folded) },
		func(it models.PinnedItem) bool { return strings.Contains(strings.ToLower(it.Path), folded) },
	}

	for _, rule := range rules {
		for i := range items {
			if rule(items[i]) {
				match := items[i]
				return &match, true
			}
		}
	}

	return nil, false
}
