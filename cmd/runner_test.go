package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/pinx/internal/models"
	"github.com/desertthunder/pinx/internal/shared"
	tu "github.com/desertthunder/pinx/internal/testing"
	"github.com/urfave/cli/v3"
)

// run drives the full command tree the way main does, so arg and flag
// parsing are exercised along with the action.
func run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "pinx", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"pinx"}, args...))
}

// tempExe creates a real file so the resolver's stat probe succeeds.
func tempExe(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("MZ"), 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	return path
}

func quietRunner(engine Engine, output *bytes.Buffer) *Runner {
	config := shared.DefaultConfig()
	config.Taskbar.RestartShell = false
	config.Output.Color = false
	return NewRunner(RunnerOpts{
		Config:   config,
		Engine:   engine,
		Logger:   shared.NewLogger(output),
		Output:   output,
		Restart:  func(context.Context) error { return nil },
		CopyText: func(string) error { return nil },
	})
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			engine := &tu.MockEngine{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Engine: engine,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.engine != Engine(engine) {
				t.Error("expected engine to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil resolver builds one over the probe dirs", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.resolver == nil {
				t.Error("expected a default resolver")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

func TestAdd(t *testing.T) {
	t.Run("pins a resolved path and reports the strategy", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{
			PinResult: &models.OperationResult{Succeeded: true, StrategyUsed: "shortcut-drop"},
		}
		runner := quietRunner(engine, output)
		target := tempExe(t, "app.exe")

		if err := run(t, runner, "add", target); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(engine.PinCalls) != 1 {
			t.Fatalf("expected one pin call, got %d", len(engine.PinCalls))
		}
		if !strings.Contains(engine.PinCalls[0], "app.exe") {
			t.Errorf("expected resolved path to reach the engine, got %s", engine.PinCalls[0])
		}
		if !strings.Contains(output.String(), "pin succeeded via shortcut-drop") {
			t.Errorf("expected strategy in output, got %q", output.String())
		}
	})

	t.Run("reports already pinned without a strategy", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{
			PinResult: &models.OperationResult{Succeeded: true},
		}
		runner := quietRunner(engine, output)

		restarted := false
		runner.restart = func(context.Context) error { restarted = true; return nil }
		runner.config.Taskbar.RestartShell = true

		if err := run(t, runner, "add", tempExe(t, "app.exe")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "already in the requested state") {
			t.Errorf("expected idempotent message, got %q", output.String())
		}
		if restarted {
			t.Error("expected no shell restart when nothing changed")
		}
	})

	t.Run("rejects position requests", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{}
		runner := quietRunner(engine, output)

		err := run(t, runner, "add", "--position", "3", tempExe(t, "app.exe"))

		if !errors.Is(err, shared.ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
		if len(engine.PinCalls) != 0 {
			t.Error("expected no pin call when the position flag is refused")
		}
	})

	t.Run("fails without a path argument", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{}, &bytes.Buffer{})

		err := run(t, runner, "add")

		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("surfaces an exhausted chain as an error", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{
			PinResult: &models.OperationResult{
				Succeeded: false,
				Diagnostics: []models.Diagnostic{
					{Index: 0, Name: "layout-manifest", Reason: "timed out"},
					{Index: 1, Name: "shortcut-drop", Reason: "access denied"},
				},
			},
		}
		runner := quietRunner(engine, output)

		err := run(t, runner, "add", tempExe(t, "app.exe"))

		if !errors.Is(err, shared.ErrAllStrategiesExhausted) {
			t.Fatalf("expected ErrAllStrategiesExhausted, got %v", err)
		}
		for _, want := range []string{"layout-manifest", "timed out", "shortcut-drop", "access denied"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("expected diagnostic %q in output, got %q", want, output.String())
			}
		}
	})

	t.Run("skips restart with no-restart", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{
			PinResult: &models.OperationResult{Succeeded: true, StrategyUsed: "pin-verb"},
		}
		runner := quietRunner(engine, output)

		restarted := false
		runner.restart = func(context.Context) error { restarted = true; return nil }
		runner.config.Taskbar.RestartShell = true

		if err := run(t, runner, "add", "--no-restart", tempExe(t, "app.exe")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if restarted {
			t.Error("expected restart to be skipped")
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("unpins by identifier", func(t *testing.T) {
		output := &bytes.Buffer{}
		engine := &tu.MockEngine{
			UnpinResult: &models.OperationResult{Succeeded: true, StrategyUsed: "shortcut-remove"},
		}
		runner := quietRunner(engine, output)

		if err := run(t, runner, "remove", "Notepad"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(engine.UnpinCalls) != 1 || engine.UnpinCalls[0] != "Notepad" {
			t.Errorf("expected unpin call for Notepad, got %v", engine.UnpinCalls)
		}
		if !strings.Contains(output.String(), "unpin succeeded via shortcut-remove") {
			t.Errorf("expected strategy in output, got %q", output.String())
		}
	})

	t.Run("propagates a no-match error", func(t *testing.T) {
		engine := &tu.MockEngine{UnpinErr: shared.ErrNotFound}
		runner := quietRunner(engine, &bytes.Buffer{})

		err := run(t, runner, "remove", "ghost")

		if !errors.Is(err, shared.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("fails without an identifier", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{}, &bytes.Buffer{})

		err := run(t, runner, "remove")

		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	pins := []models.PinnedItem{
		{Name: "Notepad", Path: `C:\Windows\notepad.exe`, Kind: models.KindApplication, Position: 0},
		{Name: "Reports", Path: `C:\Users\me\Reports`, Kind: models.KindFolder, Position: 1},
	}

	t.Run("text format", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Pins: pins}, output)

		if err := run(t, runner, "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Notepad") || !strings.Contains(output.String(), "Reports") {
			t.Errorf("expected both items in output, got %q", output.String())
		}
	})

	t.Run("json shorthand", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Pins: pins}, output)

		if err := run(t, runner, "list", "--json"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"name": "Notepad"`) {
			t.Errorf("expected JSON output, got %q", output.String())
		}
	})

	t.Run("csv format", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Pins: pins}, output)

		if err := run(t, runner, "list", "--format", "csv"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Name,Path,Kind,Position") {
			t.Errorf("expected CSV header, got %q", output.String())
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{Pins: pins}, &bytes.Buffer{})

		err := run(t, runner, "list", "--format", "xml")

		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Fatalf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("propagates enumeration failure", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{EnumErr: shared.ErrRegistryAccess}, &bytes.Buffer{})

		err := run(t, runner, "list")

		if !errors.Is(err, shared.ErrRegistryAccess) {
			t.Fatalf("expected ErrRegistryAccess, got %v", err)
		}
	})
}

func TestFind(t *testing.T) {
	found := &models.PinnedItem{Name: "Notepad", Path: `C:\Windows\notepad.exe`, Kind: models.KindApplication}

	t.Run("prints the matched item", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Found: found}, output)

		if err := run(t, runner, "find", "note"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Notepad") {
			t.Errorf("expected item name in output, got %q", output.String())
		}
	})

	t.Run("copies the path to the clipboard", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Found: found}, output)

		var copied string
		runner.copyText = func(s string) error { copied = s; return nil }

		if err := run(t, runner, "find", "--copy", "note"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if copied != found.Path {
			t.Errorf("expected %q copied, got %q", found.Path, copied)
		}
	})

	t.Run("clipboard failure is not fatal", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Found: found}, output)
		runner.copyText = func(string) error { return errors.New("no clipboard") }

		if err := run(t, runner, "find", "--copy", "note"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("json output", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{Found: found}, output)

		if err := run(t, runner, "find", "--json", "note"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"path"`) {
			t.Errorf("expected JSON output, got %q", output.String())
		}
	})

	t.Run("propagates no match", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{FindErr: shared.ErrNotFound}, &bytes.Buffer{})

		err := run(t, runner, "find", "ghost")

		if !errors.Is(err, shared.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestConfigInit(t *testing.T) {
	t.Run("writes the example configuration", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := quietRunner(&tu.MockEngine{}, output)
		path := filepath.Join(t.TempDir(), "pinx.toml")

		if err := run(t, runner, "config", "init", "--config", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, path)
		content := tu.MustReadFile(t, path)
		if !strings.Contains(content, "[taskbar]") {
			t.Errorf("expected taskbar section in config, got %q", content)
		}
	})

	t.Run("refuses to overwrite an existing file", func(t *testing.T) {
		runner := quietRunner(&tu.MockEngine{}, &bytes.Buffer{})
		path := filepath.Join(t.TempDir(), "pinx.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("failed to create fixture: %v", err)
		}

		err := run(t, runner, "config", "init", "--config", path)

		if err == nil {
			t.Fatal("expected error for existing config file")
		}
	})
}
