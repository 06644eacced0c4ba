package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/shibukawa/powrewrite"
	"github.com/shibukawa/powrewrite/rewriter"
)

// Run executes the rewrite
func (cmd *CLI) Run(ctx *Context) error {
	inputs := 0

	for _, given := range []bool{cmd.Expression != nil, cmd.File != "", cmd.Stdin} {
		if given {
			inputs++
		}
	}

	if inputs > 1 {
		return ErrInputsMutuallyExclusive
	}

	config, err := powrewrite.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rw := rewriter.New(config.FunctionNames())
	rep := newReporter(ctx.Stderr, config.Color)

	switch {
	case cmd.File != "":
		file, err := os.Open(cmd.File)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %w", cmd.File, err)
		}
		defer file.Close()

		return rewriteLines(ctx, rw, rep, file, cmd.File)
	case cmd.Stdin:
		if f, ok := ctx.Stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return ErrStdinIsTerminal
		}

		return rewriteLines(ctx, rw, rep, ctx.Stdin, "<stdin>")
	}

	expression := ""
	if cmd.Expression != nil {
		expression = *cmd.Expression
	}

	result, err := rewriteExpression(ctx, rw, rep, expression)
	if err != nil {
		return fmt.Errorf("failed to rewrite %q: %w", expression, err)
	}

	_, err = fmt.Fprintln(ctx.Stdout, result)

	return err
}

// rewriteExpression rewrites every power of one expression
func rewriteExpression(ctx *Context, rw *rewriter.Rewriter, rep *reporter, expression string) (string, error) {
	result, steps, err := rw.RewriteAll(expression)

	if ctx.Verbose {
		for i, step := range steps {
			rep.step(i+1, strings.Count(expression, "^"), step)
		}
	}

	return result, err
}

// rewriteLines rewrites each line of reader. Lines that fail are reported
// and copied unchanged so the output stays aligned with the input.
func rewriteLines(ctx *Context, rw *rewriter.Rewriter, rep *reporter, reader io.Reader, name string) error {
	lines := bufio.NewScanner(reader)
	lineNo := 0
	failed := 0

	for lines.Scan() {
		lineNo++
		line := lines.Text()

		result := line

		if strings.TrimSpace(line) != "" {
			rewritten, err := rewriteExpression(ctx, rw, rep, line)
			if err != nil {
				rep.errorf("%s:%d: %v", name, lineNo, err)

				failed++
			} else {
				result = rewritten
			}
		}

		if _, err := fmt.Fprintln(ctx.Stdout, result); err != nil {
			return err
		}
	}

	if err := lines.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d in %s", ErrLinesFailed, failed, lineNo, name)
	}

	return nil
}
