// package formatter renders enumerated pin lists to various formats (plain text, CSV, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/desertthunder/pinx/internal/models"
)

// ExportToCSV converts a pin list to CSV with columns: Name, Path, Kind, Position
func ExportToCSV(items []models.PinnedItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Path", "Kind", "Position"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.Name,
			item.Path,
			item.Kind.String(),
			strconv.Itoa(item.Position),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a pin list to indented JSON. An empty list renders
// as an empty array, not null.
func ExportToJSON(items []models.PinnedItem) ([]byte, error) {
	if items == nil {
		items = []models.PinnedItem{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// ExportToText converts a pin list to aligned plain text, one item per line.
func ExportToText(items []models.PinnedItem) ([]byte, error) {
	var buf bytes.Buffer

	if len(items) == 0 {
		buf.WriteString("no pinned items found\n")
		return buf.Bytes(), nil
	}

	width := 0
	for _, item := range items {
		if len(item.Name) > width {
			width = len(item.Name)
		}
	}

	for i, item := range items {
		buf.WriteString(fmt.Sprintf("%2d. %-*s  %-11s  %s\n", i+1, width, item.Name, item.Kind, item.Path))
	}

	return buf.Bytes(), nil
}

// Export dispatches on a format name: "text", "csv" or "json".
func Export(items []models.PinnedItem, format string) ([]byte, error) {
	switch format {
	case "", "text":
		return ExportToText(items)
	case "csv":
		return ExportToCSV(items)
	case "json":
		return ExportToJSON(items)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
