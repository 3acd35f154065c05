package alarm

import (
	"strings"

	"github.com/oshokin/alarm-clock/internal/domain/value"
)

// timeSeparator splits hours, minutes and seconds.
const timeSeparator = ':'

// InterpretTime converts alarm time text into seconds since midnight.
//
// Text without a separator is a count of seconds read as a permissive
// integer prefix ("90" is 90, "abc" is 0). A negative count yields UnsetTime.
//
// Text with a separator is read as HH:MM[:SS]. Each field is up to two digits
// and is range checked (hours 0-23, minutes 0-59, seconds 0-60). Reading
// stops at the first field that does not match; fields read so far are kept
// and the others stay zero.
func InterpretTime(text string) int {
	if !strings.ContainsRune(text, timeSeparator) {
		seconds := value.Integer(text)
		if seconds < 0 {
			return UnsetTime
		}

		return seconds
	}

	var (
		fields = [3]int{}
		limits = [3]int{23, 59, 60}
		pos    = value.SkipSpaces(text, 0)
	)

	for i := range fields {
		if i > 0 {
			if pos >= len(text) || text[pos] != timeSeparator {
				break
			}

			pos++
		}

		n, next, ok := twoDigits(text, pos)
		if !ok || n > limits[i] {
			break
		}

		fields[i] = n
		pos = next
	}

	return ((fields[0]*60)+fields[1])*60 + fields[2]
}

// twoDigits reads one or two decimal digits starting at pos.
func twoDigits(text string, pos int) (int, int, bool) {
	n, digits := 0, 0

	for pos < len(text) && digits < 2 && value.IsDigit(text[pos]) {
		n = n*10 + int(text[pos]-'0')
		pos++
		digits++
	}

	return n, pos, digits > 0
}
