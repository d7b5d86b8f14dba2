package main

import (
	"github.com/srevinsaju/menagerie/pkg/meta"
	"github.com/urfave/cli/v2"
)

func initCli() *cli.App {
	app := &cli.App{
		Name:                 meta.AppName,
		Usage:                meta.AppDescription,
		Version:              meta.AppVersion,
		Action:               cliContextRunner,
		Before:               cliConfigureColor,
		EnableBashCompletion: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				EnvVars: []string{meta.EnvPrefix + "_DEBUG"},
			},

			&cli.IntFlag{
				Name:  "verbosity",
				Usage: "Log verbosity, 0 for info, 1 for debug, 2 for trace",
			},

			&cli.StringFlag{
				Name:        "color",
				Usage:       "Configure colored output (auto, always, never, on, off)",
				EnvVars:     []string{meta.EnvPrefix + "_COLOR"},
				Value:       colorAuto,
				DefaultText: colorAuto,
			},

			&cli.BoolFlag{
				Name:    "json",
				Usage:   "Write logs as JSON",
				EnvVars: []string{meta.EnvPrefix + "_JSON"},
			},

			&cli.BoolFlag{
				Name:    "ci",
				Usage:   "Enable CI mode",
				EnvVars: []string{meta.EnvPrefix + "_CI"},
			},

			&cli.PathFlag{
				Name:    "log-file",
				Usage:   "Also write JSON logs to this file",
				EnvVars: []string{meta.EnvPrefix + "_LOG_FILE"},
			},
		},

		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run demos whose names match the given patterns, or all of them",
				ArgsUsage: "[pattern...]",
				Action:    cliContextRunner,
			},
			{
				Name:   "list",
				Usage:  "List the available demos",
				Action: cliList,
			},
		},
	}

	return app
}
