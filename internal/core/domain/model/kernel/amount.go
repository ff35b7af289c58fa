package kernel

import (
	"fmt"

	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ValidatePositiveAmount rejects zero and negative money values.
func ValidatePositiveAmount(param string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is not greater than 0", v.String()))
	}
	return nil
}

// ValidateNonNegativeAmount rejects negative money values.
func ValidateNonNegativeAmount(param string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", v.String()))
	}
	return nil
}

// CentPlaces is the precision of amounts entered by users.
const CentPlaces = 2

// ValidateCents rejects values with more than two significant decimal places.
// Trailing zeros ("10.500") are accepted.
func ValidateCents(param string, v decimal.Decimal) error {
	if !v.Equal(v.Truncate(CentPlaces)) {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s has more than %d decimal places", v.String(), CentPlaces))
	}
	return nil
}
