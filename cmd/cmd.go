// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// addCommand pins a program or file to the taskbar.
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "add",
		Aliases: []string{"pin"},
		Usage:   "Pin a program or file to the taskbar",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Usage: "Display name for the pinned entry",
			},
			&cli.IntFlag{
				Name:  "position",
				Usage: "Requested slot on the taskbar (not supported)",
			},
			&cli.BoolFlag{
				Name:  "no-restart",
				Usage: "Skip the shell refresh after pinning",
			},
		},
		Action: r.Add,
	}
}

// removeCommand unpins an item matched by name or path.
func removeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"unpin", "rm"},
		Usage:   "Unpin an item from the taskbar by name or path",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "identifier",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-restart",
				Usage: "Skip the shell refresh after unpinning",
			},
		},
		Action: r.Remove,
	}
}

// listCommand prints the current pins.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List the currently pinned items",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, csv, json)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Shorthand for --format json",
			},
		},
		Action: r.List,
	}
}

// findCommand looks up a single pinned item.
func findCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Find a pinned item by name or path",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "identifier",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the resolved path to the clipboard",
			},
		},
		Action: r.Find,
	}
}

// configCommand handles configuration file management.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to write the configuration file",
						Value:   "pinx.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive pin management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing and unpinning",
		Action:  r.TUI,
	}
}
