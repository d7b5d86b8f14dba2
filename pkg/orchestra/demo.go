package orchestra

import (
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar"
	"github.com/srevinsaju/menagerie/pkg/diag"
	"github.com/srevinsaju/menagerie/pkg/ui"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Demo interface {
	// Name is the identifier used to select the demo
	Name() string
	// Title is the human readable heading printed before the demo runs
	Title() string
	// Run writes the demonstration transcript to w. It stops between
	// entries once ctx is done.
	Run(ctx context.Context, w io.Writer) error
}

type Demos []Demo

// Registered returns every demo in the order they are run.
func Registered() Demos {
	return Demos{
		vehicleDemo{},
		animalDemo{},
		raceDemo{},
		heroDemo{},
	}
}

func (d Demos) Names() []string {
	var names []string
	for _, demo := range d {
		names = append(names, demo.Name())
	}
	return names
}

// Select keeps the demos whose name matches at least one of patterns,
// preserving registration order. Every pattern has to match something.
func (d Demos) Select(patterns []string) (Demos, diag.Diagnostics) {
	var diags diag.Diagnostics
	if len(patterns) == 0 {
		return d, diags
	}

	selected := make(map[string]bool)
	for _, pattern := range patterns {
		names, ds := d.match(pattern)
		diags = diags.Extend(ds)
		for _, name := range names {
			selected[name] = true
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	var demos Demos
	for _, demo := range d {
		if selected[demo.Name()] {
			demos = append(demos, demo)
		}
	}
	return demos, diags
}

// match returns the names of the demos matching pattern. A malformed
// pattern or one that matches nothing yields exactly one error.
func (d Demos) match(pattern string) ([]string, diag.Diagnostics) {
	var diags diag.Diagnostics
	var names []string
	for _, demo := range d {
		ok, err := doublestar.Match(pattern, demo.Name())
		if err != nil {
			return nil, diags.Append(diag.NewError(pattern, fmt.Sprintf("invalid demo pattern: %s", err)))
		}
		if ok {
			names = append(names, demo.Name())
		}
	}
	if len(names) == 0 {
		diags = diags.Append(diag.NewError(pattern, fmt.Sprintf("no demo matches %q, available demos: %v", pattern, d.Names())))
	}
	return names, diags
}

var upper = cases.Upper(language.English)

func header(p *printer, title string) {
	p.println(ui.Header(fmt.Sprintf("=== %s ===", upper.String(title))))
	p.println()
}

func section(p *printer, name string) {
	p.println(ui.Grey("---"), ui.Bold(name), ui.Grey("---"))
}
