package helper

import (
	"strconv"
	"time"

	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/shopspring/decimal"
)

// GenerateReference returns the synthetic external reference used when the
// caller supplied none. Two calls within the same millisecond collide.
func GenerateReference(now time.Time) string {
	return constant.ExternalReferencePfx + strconv.FormatInt(now.UnixMilli(), 10)
}

// FirstNonEmpty returns the first non-empty value, or "" when all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// IsSupportedCurrency checks the code against the checkout allow-list.
func IsSupportedCurrency(code string) bool {
	for _, c := range constant.Currencies {
		if c.Code == code {
			return true
		}
	}

	return false
}

// ParseAmount parses a decimal amount string in merchant currency units.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, constant.ErrInvalidAmount
	}

	if d.IsNegative() {
		return decimal.Zero, constant.ErrInvalidAmount
	}

	return d, nil
}

// IsValidAmount reports whether amount is a non-negative decimal string.
func IsValidAmount(amount string) bool {
	_, err := ParseAmount(amount)

	return err == nil
}
