package main

import (
	"io"

	"github.com/fatih/color"

	"github.com/shibukawa/powrewrite"
	"github.com/shibukawa/powrewrite/rewriter"
)

// reporter writes colored progress and failures to stderr
type reporter struct {
	w       io.Writer
	info    *color.Color
	detail  *color.Color
	failure *color.Color
}

// newReporter creates a reporter. mode is one of the configured color modes;
// auto (or empty) leaves the decision to fatih/color.
func newReporter(w io.Writer, mode string) *reporter {
	r := &reporter{
		w:       w,
		info:    color.New(color.FgBlue),
		detail:  color.New(color.FgCyan),
		failure: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{r.info, r.detail, r.failure} {
		switch mode {
		case powrewrite.ColorAlways:
			c.EnableColor()
		case powrewrite.ColorNever:
			c.DisableColor()
		}
	}

	return r
}

func (r *reporter) step(pass, total int, step rewriter.Step) {
	r.info.Fprintf(r.w, "pass %d/%d: %s\n", pass, total, step.Input)
	r.detail.Fprintf(r.w, "  base %s, exponent %s (%s) -> %s\n", step.Base, step.Exponent, step.Kind, step.Output)
}

func (r *reporter) errorf(format string, args ...any) {
	r.failure.Fprintf(r.w, format+"\n", args...)
}
