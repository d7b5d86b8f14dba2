package ui

import (
	"github.com/fatih/color"
)

var Green = color.New(color.FgGreen).SprintFunc()
var Red = color.New(color.FgRed).SprintFunc()
var Grey = color.New(color.FgHiBlack).SprintFunc()
var Yellow = color.New(color.FgYellow).SprintFunc()
var Bold = color.New(color.Bold).SprintFunc()

var Header = color.New(color.Bold, color.FgCyan).SprintFunc()

// SetColor forces colored output on or off for every helper in this
// package, regardless of terminal detection.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
