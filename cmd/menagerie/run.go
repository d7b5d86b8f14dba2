package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/srevinsaju/menagerie/pkg/logging"
	"github.com/srevinsaju/menagerie/pkg/orchestra"
	"github.com/srevinsaju/menagerie/pkg/ui"
	"github.com/srevinsaju/menagerie/pkg/x"
	"github.com/urfave/cli/v2"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
	colorOn     = "on"
	colorOff    = "off"
)

var colorModes = []string{colorAuto, colorAlways, colorNever, colorOn, colorOff}

func cliConfigureColor(cliCtx *cli.Context) error {
	mode := cliCtx.String("color")
	if !x.Contains(colorModes, mode) {
		return fmt.Errorf("invalid --color %q, expected one of %s", mode, strings.Join(colorModes, ", "))
	}
	ui.SetColor(colorEnabled(mode, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())))
	return nil
}

func colorEnabled(mode string, terminal bool) bool {
	switch mode {
	case colorAlways, colorOn:
		return true
	case colorNever, colorOff:
		return false
	default:
		return terminal && os.Getenv("NO_COLOR") == ""
	}
}

func cliContextRunner(cliCtx *cli.Context) error {
	return orchestra.Run(configFromCliContext(cliCtx))
}

func cliList(cliCtx *cli.Context) error {
	return orchestra.List(configFromCliContext(cliCtx))
}

func configFromCliContext(cliCtx *cli.Context) orchestra.Config {
	verbosity := cliCtx.Int("verbosity")
	if cliCtx.Bool("debug") && verbosity < 1 {
		verbosity = 1
	}

	return orchestra.Config{
		Demos:  cliCtx.Args().Slice(),
		Output: cliCtx.App.Writer,
		Logging: logging.Config{
			Verbosity: verbosity,
			IsCI:      cliCtx.Bool("ci"),
			JSON:      cliCtx.Bool("json"),
			Output:    cliCtx.App.ErrWriter,
			Sinks:     logging.ParseSinksFromCLI(cliCtx),
		},
	}
}
