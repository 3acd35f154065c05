// Package value holds the permissive text interpreters shared by the
// configuration domain types.
package value

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// Integer parses the longest signed decimal prefix of text after optional
// leading white space. Text without leading digits yields 0 and trailing
// garbage is ignored. Values beyond the int range saturate.
func Integer(text string) int {
	pos := SkipSpaces(text, 0)

	negative := false
	if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
		negative = text[pos] == '-'
		pos++
	}

	n := 0

	for ; pos < len(text) && IsDigit(text[pos]); pos++ {
		digit := int(text[pos] - '0')

		if negative {
			if n < (minInt+digit)/10 {
				return minInt
			}

			n = n*10 - digit

			continue
		}

		if n > (maxInt-digit)/10 {
			return maxInt
		}

		n = n*10 + digit
	}

	return n
}

// Bounded returns src cut to at most limit bytes and whether it was cut.
// A non-positive limit disables the bound.
func Bounded(src string, limit int) (string, bool) {
	if limit <= 0 || len(src) <= limit {
		return src, false
	}

	return src[:limit], true
}

// SkipSpaces returns the first position at or after pos that is not white space.
func SkipSpaces(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || (text[pos] >= '\t' && text[pos] <= '\r')) {
		pos++
	}

	return pos
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
