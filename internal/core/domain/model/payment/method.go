package payment

import (
	"fmt"
	"strings"

	"gestion/internal/pkg/errs"
)

// Method is how a payment was made. The zero value is invalid.
type Method string

const (
	Cash     Method = "cash"
	Card     Method = "card"
	Transfer Method = "transfer"
	Check    Method = "check"
	MBWay    Method = "mbway"
	Other    Method = "other"
)

func Methods() []Method {
	return []Method{Cash, Card, Transfer, Check, MBWay, Other}
}

// ParseMethod normalizes case and whitespace before matching.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Method) Validate() error {
	switch m {
	case Cash, Card, Transfer, Check, MBWay, Other:
		return nil
	case "":
		return errs.NewValueIsRequiredError("method")
	default:
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

func (m Method) String() string {
	return string(m)
}
