package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrEmptyCode = errors.New("voucher code is required")

// Voucher is a named discount code worth a flat amount off the
// checkout subtotal. Codes are case-insensitive.
type Voucher struct {
	Code     string
	Discount decimal.Decimal
}

// NormalizeCode canonicalizes a raw code for registry lookup.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrEmptyCode
	}
	return code, nil
}
