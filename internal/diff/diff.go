// Package diff renders a colorized line-by-line diff between a TOML
// document's source and its serialized form after a mutation, for the
// tomldoc CLI's `diff` subcommand.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Result holds a before/after byte pair and whether they differ.
type Result struct {
	Before  string
	After   string
	Changed bool
}

// Compute compares before and after.
func Compute(before, after []byte) *Result {
	b, a := string(before), string(after)
	return &Result{Before: b, After: a, Changed: b != a}
}

// String renders a human-readable diff with color highlighting. Lines that
// are unchanged are omitted; a changed line is shown as a removed line
// (red, prefixed "-") followed by its replacement (green, prefixed "+").
func (r *Result) String() string {
	if !r.Changed {
		return color.GreenString("no changes")
	}

	beforeLines := strings.Split(r.Before, "\n")
	afterLines := strings.Split(r.After, "\n")

	maxLines := len(beforeLines)
	if len(afterLines) > maxLines {
		maxLines = len(afterLines)
	}

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	var buf bytes.Buffer
	for i := 0; i < maxLines; i++ {
		var before, after string
		if i < len(beforeLines) {
			before = beforeLines[i]
		}
		if i < len(afterLines) {
			after = afterLines[i]
		}
		if before == after {
			continue
		}
		cyan.Fprintf(&buf, "@@ line %d @@\n", i+1)
		if before != "" {
			red.Fprintf(&buf, "- %s\n", before)
		}
		if after != "" {
			green.Fprintf(&buf, "+ %s\n", after)
		}
	}
	return buf.String()
}

// Unified renders a minimal unified-diff-style header plus body, for piping
// to other tools.
func (r *Result) Unified(filename string) string {
	if !r.Changed {
		return ""
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- a/%s\n", filename)
	fmt.Fprintf(&buf, "+++ b/%s\n", filename)
	buf.WriteString(r.String())
	return buf.String()
}
