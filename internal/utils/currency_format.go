package utils

import (
	"fmt"

	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NairaToKobo converts a Naira amount to its integer kobo representation.
// Amounts with sub-kobo precision are rejected rather than rounded.
func NairaToKobo(amount decimal.Decimal) (int64, error) {
	kobo := amount.Mul(hundred)
	if !kobo.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-kobo precision: %w", amount.String(), apperrors.ErrValidation)
	}
	return kobo.IntPart(), nil
}

// KoboToNaira converts integer kobo back to a Naira decimal for API responses.
// Example: 40000000 kobo -> 400000 Naira.
func KoboToNaira(kobo int64) decimal.Decimal {
	return decimal.NewFromInt(kobo).Div(hundred)
}
