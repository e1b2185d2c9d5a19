// Package diff renders a unified diff between two rendered theme documents.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares two documents and renders the differences in unified diff
// format. Identical inputs produce an empty string. Output is deterministic,
// so it is safe to assert against and to pipe through further tooling.
// Diffs longer than 10,000 lines are truncated with a marker.
func Unified(a, b []byte, aLabel, bLabel string) string {
	if bytes.Equal(a, b) {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(a), string(b), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", aLabel)
	fmt.Fprintf(&buf, "+++ %s\n", bLabel)

	aLines := strings.Count(string(a), "\n") + 1
	bLines := strings.Count(string(b), "\n") + 1
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", aLines, bLines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		lines := strings.Split(d.Text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(d.Text, "\n") {
			lines = lines[:len(lines)-1]
		}

		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}
