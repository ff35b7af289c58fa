package access

import (
	"slices"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
)

// Principal is an authenticated user with the capabilities of their session.
type Principal struct {
	userID       kernel.UUID
	email        string
	roles        []Role
	capabilities []Capability
}

// NewPrincipal resolves capabilities from roles. Unknown roles grant nothing.
func NewPrincipal(userID kernel.UUID, email string, roles []Role) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}
	sorted := slices.Clone(roles)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return Principal{
		userID:       userID,
		email:        email,
		roles:        sorted,
		capabilities: Capabilities(sorted...),
	}, nil
}

func (p Principal) UserID() kernel.UUID {
	return p.userID
}

func (p Principal) Email() string {
	return p.email
}

func (p Principal) Roles() []Role {
	return slices.Clone(p.roles)
}

func (p Principal) Capabilities() []Capability {
	return slices.Clone(p.capabilities)
}

// IsAuthenticated is false for the zero Principal.
func (p Principal) IsAuthenticated() bool {
	return !p.userID.IsZero()
}

func (p Principal) Can(c Capability) bool {
	_, found := slices.BinarySearch(p.capabilities, c)
	return found
}

// Require returns an *errs.AccessDeniedError when c is missing.
func (p Principal) Require(c Capability) error {
	if p.Can(c) {
		return nil
	}
	who := p.email
	if who == "" {
		who = "anonymous"
	}
	return errs.NewAccessDeniedError(who, string(c))
}
