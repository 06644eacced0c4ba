package rewriter

// ExponentKind selects the output template for a power.
type ExponentKind int

const (
	// General is any exponent that is not a plain non-negative integer
	// literal: variables, decimals, negative numbers, sums.
	General ExponentKind = iota
	// Integer is a run of two or more decimal digits.
	Integer
	// SmallInteger is a single decimal digit.
	SmallInteger
)

func (k ExponentKind) String() string {
	switch k {
	case SmallInteger:
		return "small-integer"
	case Integer:
		return "integer"
	default:
		return "general"
	}
}

// Classify returns the kind of a normalized exponent.
func Classify(exponent string) ExponentKind {
	if exponent == "" || !allDigits(exponent) {
		return General
	}

	if len(exponent) == 1 {
		return SmallInteger
	}

	return Integer
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
