package rewriter

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"plain", "abc", "abc"},
		{"surrounding spaces", "  abc ", "abc"},
		{"one layer", "(a+b)", "a+b"},
		{"spaces then layer", " (a+b) ", "a+b"},
		{"only one layer", "((a+b))", "(a+b)"},
		{"spaces inside the layer", "( a )", "a"},
		{"spaces inside and outside", "  (  a+b ) ", "a+b"},
		{"blank group", "(  )", ""},
		{"call is not enclosed", "f(x)", "f(x)"},
		{"separate groups are not enclosed", "(a)*(b)", "(a)*(b)"},
		{"empty group", "()", ""},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := normalize(tt.src, Span{Start: 0, End: len(tt.src) - 1})
			assert.Equal(t, tt.expected, span.Text(tt.src))
		})
	}
}

func TestSpanLen(t *testing.T) {
	assert.Equal(t, 3, Span{Start: 2, End: 4}.Len())
	assert.Equal(t, 1, Span{Start: 2, End: 2}.Len())
	assert.Equal(t, 0, Span{Start: 3, End: 2}.Len())
	assert.Equal(t, "", Span{Start: 3, End: 2}.Text("abcdef"))
}
