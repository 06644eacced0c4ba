package rewriter

// Span is an inclusive byte range of an operand.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered. A span with End < Start is empty.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}

	return s.End - s.Start + 1
}

// Text returns the covered part of src.
func (s Span) Text(src string) string {
	if s.Len() == 0 {
		return ""
	}

	return src[s.Start : s.End+1]
}

// normalize drops surrounding spaces and one layer of parentheses that
// encloses the whole span, then the spaces that were inside that layer.
// ((a)) becomes (a) and ( a ) becomes a.
func normalize(src string, s Span) Span {
	s = trimSpaces(src, s)

	if s.Len() >= 2 && src[s.Start] == '(' && src[s.End] == ')' && encloses(src[s.Start:s.End+1]) {
		s.Start++
		s.End--
		s = trimSpaces(src, s)
	}

	return s
}

func trimSpaces(src string, s Span) Span {
	for s.Start <= s.End && src[s.Start] == ' ' {
		s.Start++
	}

	for s.End >= s.Start && src[s.End] == ' ' {
		s.End--
	}

	return s
}

// encloses reports whether the opening parenthesis at the start of text is
// closed by its last byte, as in (a+b) but not (a)+(b).
func encloses(text string) bool {
	depth := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(text)-1
			}
		}
	}

	return false
}
