package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/pinx/internal/models"
)

var _ list.Item = pinItem{}

// pinItem wraps [models.PinnedItem] to implement [list.Item].
type pinItem struct {
	item models.PinnedItem
}

func (i pinItem) FilterValue() string { return i.item.Name }
func (i pinItem) Title() string       { return i.item.Name }
func (i pinItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.item.Kind, i.item.Path)
	if i.item.Position >= 0 {
		desc = fmt.Sprintf("%s • slot %d", desc, i.item.Position)
	}
	return desc
}
