// Package scanner finds the extent of an operand next to an infix operator.
//
// An operand is a run of word characters, possibly containing balanced
// parenthesized groups:
//
//	(var1 + (var2 / var3))
//	^boundary            ^start
//
// The same walk works in both directions.
package scanner

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidDirection      = errors.New("scan direction must be leftward or rightward")
	ErrOutOfRange            = errors.New("scan start is out of range")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses in operand")
)

// Direction is the step taken on each iteration of a scan.
type Direction int

const (
	Leftward  Direction = -1
	Rightward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Leftward:
		return "leftward"
	case Rightward:
		return "rightward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsWordChar reports whether c can be part of a contiguous token.
// The decimal point counts so that literals like 2.5 stay in one piece.
func IsWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}

	return c == '_' || c == '.'
}

// SkipSpaces returns the first position at or beyond pos in direction dir
// that does not hold a space. The result is out of range when only spaces
// remain.
func SkipSpaces(text string, pos int, dir Direction) int {
	for pos >= 0 && pos < len(text) && text[pos] == ' ' {
		pos += int(dir)
	}

	return pos
}

// FindBoundary walks from start in direction dir and returns the last
// position that still belongs to the operand. Parentheses are counted so a
// balanced group is consumed as a whole; a '(' met while scanning rightward
// (or a ')' met while scanning leftward) opens a group.
//
// The walk stops at the string ends. Running off an end while a group is
// still open reports ErrUnbalancedParentheses.
func FindBoundary(text string, start int, dir Direction) (int, error) {
	if dir != Leftward && dir != Rightward {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	if start < 0 || start >= len(text) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, start, len(text))
	}

	step := int(dir)
	pos := start
	nesting := 0

	for {
		switch text[pos] {
		case ')':
			nesting -= step
		case '(':
			nesting += step
		}

		pos += step

		if pos < 0 || pos >= len(text) {
			if nesting > 0 {
				return 0, fmt.Errorf("%w: %s scan from position %d", ErrUnbalancedParentheses, dir, start)
			}

			break
		}

		if !IsWordChar(text[pos]) && nesting <= 0 {
			break
		}
	}

	return pos - step, nil
}
