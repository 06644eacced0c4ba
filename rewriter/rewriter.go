// Package rewriter turns infix powers (a^b) into function calls.
//
// One call to Substitute rewrites the first '^' of its input:
//
//	a^2       -> gsl_pow_2(a)
//	a^12      -> gsl_pow_int(a, 12)
//	(x+1)^n   -> pow(x+1, n)
//
// RewriteAll repeats the substitution once per '^' of the original input.
// Chains are therefore resolved left to right: a^b^c becomes
// pow(pow(a, b), c), not the right-associative reading.
package rewriter

import (
	"fmt"
	"strings"

	"github.com/shibukawa/powrewrite/scanner"
)

// FunctionNames holds the names emitted for each exponent kind.
type FunctionNames struct {
	General            string
	Integer            string
	SmallIntegerPrefix string
}

// DefaultFunctionNames are the GSL names.
var DefaultFunctionNames = FunctionNames{
	General:            "pow",
	Integer:            "gsl_pow_int",
	SmallIntegerPrefix: "gsl_pow_",
}

// Step describes one rewritten power.
type Step struct {
	Pos      int // offset of '^' in Input
	Input    string
	Output   string
	Base     string
	Exponent string
	Kind     ExponentKind
}

// Rewriter rewrites powers using a fixed set of function names.
type Rewriter struct {
	names FunctionNames
}

// New creates a Rewriter. Empty names fall back to DefaultFunctionNames.
func New(names FunctionNames) *Rewriter {
	if names.General == "" {
		names.General = DefaultFunctionNames.General
	}

	if names.Integer == "" {
		names.Integer = DefaultFunctionNames.Integer
	}

	if names.SmallIntegerPrefix == "" {
		names.SmallIntegerPrefix = DefaultFunctionNames.SmallIntegerPrefix
	}

	return &Rewriter{names: names}
}

// Default creates a Rewriter with the GSL names.
func Default() *Rewriter {
	return New(DefaultFunctionNames)
}

// Names returns the function names in use.
func (r *Rewriter) Names() FunctionNames {
	return r.names
}

// Substitute rewrites the first power in src. Text before the base and
// after the exponent is copied unchanged. Without a '^' src is returned as
// is with a nil step.
func (r *Rewriter) Substitute(src string) (string, *Step, error) {
	hat := strings.IndexByte(src, '^')
	if hat < 0 {
		return src, nil, nil
	}

	base, err := findBase(src, hat)
	if err != nil {
		return "", nil, err
	}

	exponent, err := findExponent(src, hat)
	if err != nil {
		return "", nil, err
	}

	// prefix and suffix come from the spans as scanned, before normalizing
	prefix := src[:base.Start]
	suffix := src[exponent.End+1:]

	base = normalize(src, base)
	if base.Len() == 0 {
		return "", nil, &ParseError{Pos: hat, Err: fmt.Errorf("%w: base", ErrEmptyOperand)}
	}

	exponent = normalize(src, exponent)
	if exponent.Len() == 0 {
		return "", nil, &ParseError{Pos: hat, Err: fmt.Errorf("%w: exponent", ErrEmptyOperand)}
	}

	step := &Step{
		Pos:      hat,
		Input:    src,
		Base:     base.Text(src),
		Exponent: exponent.Text(src),
	}
	step.Kind = Classify(step.Exponent)

	var out strings.Builder
	out.Grow(len(src) + len(r.names.Integer) + 4)
	out.WriteString(prefix)
	r.render(&out, step)
	out.WriteString(suffix)

	step.Output = out.String()

	return step.Output, step, nil
}

// RewriteAll runs one substitution per '^' in src and returns the final
// string together with the steps taken.
func (r *Rewriter) RewriteAll(src string) (string, []Step, error) {
	passes := strings.Count(src, "^")
	steps := make([]Step, 0, passes)
	current := src

	for i := 0; i < passes; i++ {
		next, step, err := r.Substitute(current)
		if err != nil {
			return "", steps, fmt.Errorf("pass %d of %d: %w", i+1, passes, err)
		}

		if step == nil {
			return "", steps, fmt.Errorf("pass %d of %d: %w", i+1, passes, ErrPassIncomplete)
		}

		steps = append(steps, *step)
		current = next
	}

	return current, steps, nil
}

// Rewrite is RewriteAll without the steps.
func (r *Rewriter) Rewrite(src string) (string, error) {
	result, _, err := r.RewriteAll(src)
	return result, err
}

func (r *Rewriter) render(out *strings.Builder, step *Step) {
	switch step.Kind {
	case SmallInteger:
		out.WriteString(r.names.SmallIntegerPrefix)
		out.WriteString(step.Exponent)
		out.WriteByte('(')
		out.WriteString(step.Base)
		out.WriteByte(')')
	case Integer:
		writeCall(out, r.names.Integer, step.Base, step.Exponent)
	default:
		writeCall(out, r.names.General, step.Base, step.Exponent)
	}
}

func writeCall(out *strings.Builder, name, base, exponent string) {
	out.WriteString(name)
	out.WriteByte('(')
	out.WriteString(base)
	out.WriteString(", ")
	out.WriteString(exponent)
	out.WriteByte(')')
}

// findBase returns the raw base span left of the '^' at hat.
func findBase(src string, hat int) (Span, error) {
	end := scanner.SkipSpaces(src, hat-1, scanner.Leftward)
	if end < 0 {
		return Span{}, &ParseError{Pos: hat, Err: ErrMissingBase}
	}

	if c := src[end]; !scanner.IsWordChar(c) && c != ')' {
		return Span{}, &ParseError{Pos: hat, Err: fmt.Errorf("%w: unexpected %q", ErrMissingBase, c)}
	}

	start, err := scanner.FindBoundary(src, end, scanner.Leftward)
	if err != nil {
		return Span{}, &ParseError{Pos: hat, Err: err}
	}

	return Span{Start: start, End: end}, nil
}

// findExponent returns the raw exponent span right of the '^' at hat. A
// leading sign belongs to the exponent, so a^-1 has the exponent -1.
func findExponent(src string, hat int) (Span, error) {
	start := scanner.SkipSpaces(src, hat+1, scanner.Rightward)
	if start >= len(src) {
		return Span{}, &ParseError{Pos: hat, Err: ErrMissingExponent}
	}

	first := start
	if c := src[first]; c == '-' || c == '+' {
		first++
		if first >= len(src) {
			return Span{}, &ParseError{Pos: hat, Err: fmt.Errorf("%w: sign without operand", ErrMissingExponent)}
		}
	}

	if c := src[first]; !scanner.IsWordChar(c) && c != '(' {
		return Span{}, &ParseError{Pos: hat, Err: fmt.Errorf("%w: unexpected %q", ErrMissingExponent, c)}
	}

	end, err := scanner.FindBoundary(src, first, scanner.Rightward)
	if err != nil {
		return Span{}, &ParseError{Pos: hat, Err: err}
	}

	return Span{Start: start, End: end}, nil
}
