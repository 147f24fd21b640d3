// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/pinx/internal/models"
)

// MockEngine is a test double for the orchestration engine surface the CLI
// and TUI consume. Results and errors are assigned per call site.
type MockEngine struct {
	PinResult   *models.OperationResult
	PinErr      error
	UnpinResult *models.OperationResult
	UnpinErr    error
	Pins        []models.PinnedItem
	EnumErr     error
	Found       *models.PinnedItem
	FindErr     error

	PinCalls   []string
	UnpinCalls []string
}

func (m *MockEngine) Pin(ctx context.Context, path string) (*models.OperationResult, error) {
	m.PinCalls = append(m.PinCalls, path)
	return m.PinResult, m.PinErr
}

func (m *MockEngine) Unpin(ctx context.Context, identifier string) (*models.OperationResult, error) {
	m.UnpinCalls = append(m.UnpinCalls, identifier)
	return m.UnpinResult, m.UnpinErr
}

func (m *MockEngine) Enumerate(ctx context.Context) ([]models.PinnedItem, error) {
	return m.Pins, m.EnumErr
}

func (m *MockEngine) Find(ctx context.Context, identifier string) (*models.PinnedItem, error) {
	return m.Found, m.FindErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
