// Package phone normalizes raw phone-number input to the +1XXXXXXXXXX form
// used everywhere else in the service.
package phone

import "strings"

// Normalize strips formatting from raw and returns the canonical +1 form.
// It accepts a bare 10-digit number or an 11-digit number with a leading 1;
// anything else, or an area code outside the NANP whitelist, reports ok=false.
// The function is pure and idempotent on its own output.
func Normalize(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	var canonical string
	switch {
	case len(digits) == 11 && digits[0] == '1':
		canonical = "+" + digits
	case len(digits) == 10:
		canonical = "+1" + digits
	default:
		return "", false
	}

	if _, ok := validAreaCodes[canonical[2:5]]; !ok {
		return "", false
	}
	return canonical, true
}
