package utils

import (
	"errors"
	"fmt"
	"strconv"
)

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "₹"

// ParsePrice parses a price stored as text and rejects anything that
// is not a non-negative decimal.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("price is not a number")
	}
	if v < 0 {
		return 0, errors.New("price must be non-negative")
	}
	return v, nil
}

// FormatPrice renders a textual price with the currency symbol and two
// decimal places, e.g. "₹249.00".
func FormatPrice(s string) (string, error) {
	v, err := ParsePrice(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%.2f", CurrencySymbol, v), nil
}

// DisplayPrice formats a stored price for display, falling back to the
// raw text when the stored value does not parse.
func DisplayPrice(s string) string {
	out, err := FormatPrice(s)
	if err != nil {
		return s
	}
	return out
}
