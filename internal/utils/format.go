package utils

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidAmount is returned when an amount string is not a base-10 integer.
var ErrInvalidAmount = errors.New("amount is not a valid integer")

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders a whole-rupiah amount with Indonesian digit grouping,
// e.g. 1000000 -> "Rp 1.000.000".
func FormatIDR(amount int64) string {
	return idPrinter.Sprintf("Rp %v", number.Decimal(amount))
}

// ParseAmount parses a user-submitted monetary amount as a base-10 integer.
func ParseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// Digits strips every non-digit rune, recovering the numeric part of a
// formatted currency string.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
