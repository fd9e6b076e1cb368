package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// expirationLongRegex matches MM/YYYY anywhere in the input
	expirationLongRegex = regexp.MustCompile(`(\d{2})/(\d{4})`)

	// expirationShortRegex matches MM/YY anywhere in the input
	expirationShortRegex = regexp.MustCompile(`(\d{2})/(\d{2})`)

	// amountRegex allows digits with at most one decimal separator
	amountRegex = regexp.MustCompile(`^[0-9]*[.,]?[0-9]*$`)
)

// ParseExpiration extracts month and year from a free-form expiration string.
// MM/YYYY is tried first; MM/YY is accepted next and the year gets 2000 added.
// The month is not range-checked here. ok is false when neither pattern matches.
func ParseExpiration(input string) (month, year int, ok bool) {
	if m := expirationLongRegex.FindStringSubmatch(input); m != nil {
		return atoi(m[1]), atoi(m[2]), true
	}
	if m := expirationShortRegex.FindStringSubmatch(input); m != nil {
		return atoi(m[1]), atoi(m[2]) + 2000, true
	}
	return 0, 0, false
}

// ValidateAmount reports whether input is a plain decimal amount: digits with an
// optional single '.' or ',' separator and at least one digit. No range or
// currency checks are made.
func ValidateAmount(input string) bool {
	return amountRegex.MatchString(input) && strings.ContainsAny(input, "0123456789")
}

// atoi converts a regex digit group; the groups only ever hold ASCII digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
