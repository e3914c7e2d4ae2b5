// Package diff renders line-oriented differences between two renderings of
// the same report.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxLines        = 10000
	truncateMessage = "... (diff truncated) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Lines diffs before and after line by line. Unchanged lines are prefixed with
// a space, removed lines with "-" and added lines with "+". Identical inputs
// yield "".
func Lines(before, after, beforeLabel, afterLabel string) (string, Stats) {
	var stats Stats
	if before == after {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	out = append(out, "--- "+beforeLabel, "+++ "+afterLabel)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range split(d.Text) {
			switch prefix {
			case "-":
				stats.Removed++
			case "+":
				stats.Added++
			}
			out = append(out, prefix+line)
		}
	}

	if len(out) > maxLines {
		out = append(out[:maxLines], truncateMessage)
	}
	return strings.Join(out, "\n") + "\n", stats
}

// String summarises the stats as "+a -r".
func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

func split(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
