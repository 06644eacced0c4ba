package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent removes the indentation of a raw string literal written inside
// a test function. The first line (right after the backquote) is dropped and
// the indentation of the second line is removed from every line:
//
//	src := testhelper.TrimIndent(t, `
//		a^2
//		b^12
//	`)
//
// yields "a^2\nb^12\n".
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	lines = lines[1:]
	indent := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	// closing backquote line
	last := len(lines) - 1
	if strings.TrimSpace(lines[last]) == "" {
		lines[last] = ""
	}

	return strings.Join(lines, "\n")
}
