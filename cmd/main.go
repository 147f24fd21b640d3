package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/pinx/internal/platform"
	"github.com/desertthunder/pinx/internal/shared"
	"github.com/desertthunder/pinx/internal/sources"
	"github.com/desertthunder/pinx/internal/taskbar"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("pinx.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("pinx.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.SetVerbose(logger, config.Output.Verbose)

	facts := platform.DetectFacts()
	registry := sources.NewSystemRegistry()
	pinDir := platform.PinDir(config.Taskbar.PinDir)

	helper := platform.NewHelper(platform.HelperOpts{
		Shell:             config.Helper.Powershell,
		Timeout:           config.Helper.CallTimeout(),
		LaunchesPerSecond: config.Helper.LaunchesPerSecond,
		Logger:            logger,
	})

	engine := taskbar.NewEngine(taskbar.EngineOpts{
		Sources: []sources.Source{
			sources.NewShortcutSource(pinDir, sources.ResolveLink, logger),
			sources.NewTaskbandSource(registry, logger),
			sources.NewCloudStoreSource(registry, facts, logger),
		},
		Ops:    taskbar.NewShellOps(helper, pinDir, logger),
		Facts:  facts,
		Logger: logger,
	})

	runner := NewRunner(RunnerOpts{
		Config: config,
		Engine: engine,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "pinx",
		Usage:    "Pin, unpin and inspect Windows taskbar items",
		Version:  "0.3.0",
		Commands: runner.register(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				shared.SetVerbose(logger, true)
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
