package renderer

import (
	"fmt"

	"github.com/fatih/color"
)

// Style decorates the pieces of the text report. Each field formats its
// operands the way fmt.Sprint does.
type Style struct {
	Title    func(a ...interface{}) string
	Heading  func(a ...interface{}) string
	Added    func(a ...interface{}) string
	Removed  func(a ...interface{}) string
	Modified func(a ...interface{}) string
	Success  func(a ...interface{}) string
}

// PlainStyle leaves text untouched.
func PlainStyle() Style {
	return Style{
		Title:    fmt.Sprint,
		Heading:  fmt.Sprint,
		Added:    fmt.Sprint,
		Removed:  fmt.Sprint,
		Modified: fmt.Sprint,
		Success:  fmt.Sprint,
	}
}

// ColorStyle colors the report with ANSI escapes. With force unset the
// colors follow color.NoColor, which is true when stdout is not a terminal
// or NO_COLOR is set.
func ColorStyle(force bool) Style {
	sprint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if force {
			c.EnableColor()
		}
		return c.SprintFunc()
	}

	return Style{
		Title:    sprint(color.Bold, color.FgCyan),
		Heading:  sprint(color.Bold, color.FgBlue),
		Added:    sprint(color.FgGreen),
		Removed:  sprint(color.FgRed),
		Modified: sprint(color.FgYellow),
		Success:  sprint(color.FgGreen),
	}
}

// StyleFor maps the color setting to a style. Auto only colors when the
// report goes to a terminal.
func StyleFor(mode string, terminal bool) Style {
	switch mode {
	case "always":
		return ColorStyle(true)
	case "never":
		return PlainStyle()
	default:
		if !terminal || color.NoColor {
			return PlainStyle()
		}
		return ColorStyle(false)
	}
}
