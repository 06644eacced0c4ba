package rewriter

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		exponent string
		expected ExponentKind
	}{
		{"0", SmallInteger},
		{"9", SmallInteger},
		{"10", Integer},
		{"12", Integer},
		{"007", Integer},
		{"n", General},
		{"2.5", General},
		{"-1", General},
		{"1e3", General},
		{"n+1", General},
		{"", General},
	}

	for _, tt := range tests {
		t.Run(tt.exponent, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.exponent))
		})
	}
}

func TestExponentKindString(t *testing.T) {
	assert.Equal(t, "small-integer", SmallInteger.String())
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "general", General.String())
}
