package domain

// Luhn reports whether digits passes the mod-10 checksum. Every second digit
// from the right is doubled, subtracting 9 when the result exceeds 9. Empty
// input and input holding anything other than ASCII digits are invalid.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	length := len(digits)

	for i := 0; i < length; i++ {
		c := digits[length-1-i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return sum%10 == 0
}
