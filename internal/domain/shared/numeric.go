package shared

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a decimal value (price, rate) from free-form text input.
// An empty string is not a valid decimal. The field name is only used to build
// the error message.
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewDomainError("INVALID_NUMBER", field+" is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewDomainError("INVALID_NUMBER", field+" is not a valid number")
	}
	return d, nil
}

// ParseCount parses a non-negative integer count (capacity, quantity) from
// text input. An empty string counts as zero; the capacity field is
// optional on the event form.
func ParseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewDomainError("INVALID_NUMBER", field+" is not a valid integer")
	}
	if n < 0 {
		return 0, NewDomainError("INVALID_NUMBER", field+" cannot be negative")
	}
	return n, nil
}
