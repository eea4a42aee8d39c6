package phone

import (
	"fmt"
	"strings"
)

// MaxDigits is the longest Brazilian number: two-digit area code plus nine digits.
const MaxDigits = 11

// MinDigits is the shortest number accepted for execution (landline).
const MinDigits = 10

// Digits strips everything but 0-9.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders the progressive "(DD) DDDDD-DDDD" mask while the number
// is typed. Input beyond MaxDigits is cut off.
func FormatPhone(input string) string {
	d := Digits(input)
	if len(d) > MaxDigits {
		d = d[:MaxDigits]
	}

	switch {
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 7:
		return fmt.Sprintf("(%s) %s", d[:2], d[2:])
	default:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	}
}

// FormatCooldown renders seconds as m:ss.
func FormatCooldown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
