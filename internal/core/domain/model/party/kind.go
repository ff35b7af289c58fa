package party

import (
	"fmt"
	"strings"

	"gestion/internal/pkg/errs"
)

type Kind string

const (
	Client   Kind = "client"
	Supplier Kind = "supplier"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	switch k {
	case Client, Supplier:
		return nil
	case "":
		return errs.NewValueIsRequiredError("kind")
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is neither client nor supplier", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}
