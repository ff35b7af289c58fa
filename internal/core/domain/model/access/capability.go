package access

import (
	"fmt"
	"slices"
	"strings"

	"gestion/internal/pkg/errs"
)

// Capability is a resource:action permission.
type Capability string

const (
	OrderTransition Capability = "order:transition"
	OrderDelete     Capability = "order:delete"
	PaymentRecord   Capability = "payment:record"
	PaymentDelete   Capability = "payment:delete"
	PartyArchive    Capability = "party:archive"
	ProductArchive  Capability = "product:archive"
	AttachmentWrite Capability = "attachment:write"
)

// Role is a named set of capabilities stored in user_roles.
type Role string

const (
	Admin   Role = "admin"
	Ops     Role = "ops"
	Finance Role = "finance"
	Viewer  Role = "viewer"

	// Collaborator is granted by the configured e-mail allow-list, never stored.
	Collaborator Role = "collaborator"
)

var roleCapabilities = map[Role][]Capability{
	Admin: {
		OrderTransition, OrderDelete,
		PaymentRecord, PaymentDelete,
		PartyArchive, ProductArchive, AttachmentWrite,
	},
	Ops:          {OrderTransition, PartyArchive, ProductArchive, AttachmentWrite},
	Finance:      {OrderTransition, PaymentRecord, PaymentDelete, AttachmentWrite},
	Viewer:       {},
	Collaborator: {OrderTransition},
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return r, nil
}

// Capabilities expands roles into a sorted, de-duplicated capability list.
func Capabilities(roles ...Role) []Capability {
	caps := make([]Capability, 0)
	for _, role := range roles {
		caps = append(caps, roleCapabilities[role]...)
	}
	slices.Sort(caps)
	return slices.Compact(caps)
}
