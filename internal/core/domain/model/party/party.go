package party

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
)

var (
	ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

	// ErrPartyIsArchived is returned when an archived party is used for a new order.
	ErrPartyIsArchived = errors.New("party is archived")
)

// Contact holds the optional contact fields of a party.
type Contact struct {
	Email   string
	Phone   string
	Address string
	TaxID   string
}

// Party is a client or a supplier.
type Party struct {
	id      kernel.UUID
	kind    Kind
	name    string
	contact Contact

	active            bool
	deactivatedAt     *time.Time
	deactivatedReason string

	createdAt time.Time

	isConstructed bool
}

// NewParty creates an active party.
func NewParty(id kernel.UUID, kind Kind, name string, contact Contact, now time.Time) (*Party, error) {
	p := &Party{
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setKind(kind),
		p.setName(name),
		p.setContact(contact),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParty rebuilds a persisted party including its archive state.
func RestoreParty(
	id kernel.UUID,
	kind Kind,
	name string,
	contact Contact,
	active bool,
	deactivatedAt *time.Time,
	deactivatedReason string,
	createdAt time.Time,
) (*Party, error) {
	p, err := NewParty(id, kind, name, contact, createdAt)
	if err != nil {
		return nil, err
	}

	if active && deactivatedAt != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deactivated at", errors.New("set on an active party"))
	}

	p.active = active
	p.deactivatedAt = deactivatedAt
	p.deactivatedReason = deactivatedReason
	return p, nil
}

func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

func (p *Party) ID() kernel.UUID           { return p.id }
func (p *Party) Kind() Kind                { return p.kind }
func (p *Party) Name() string              { return p.name }
func (p *Party) Contact() Contact          { return p.contact }
func (p *Party) IsActive() bool            { return p.active }
func (p *Party) DeactivatedAt() *time.Time { return p.deactivatedAt }
func (p *Party) DeactivatedReason() string { return p.deactivatedReason }
func (p *Party) CreatedAt() time.Time      { return p.createdAt }

// EnsureActive returns ErrPartyIsArchived for archived parties.
func (p *Party) EnsureActive() error {
	if !p.active {
		return fmt.Errorf("%w: %s %s", ErrPartyIsArchived, p.kind, p.name)
	}
	return nil
}

// Rename replaces the display name.
func (p *Party) Rename(name string) error {
	return p.setName(name)
}

// UpdateContact replaces all contact fields.
func (p *Party) UpdateContact(contact Contact) error {
	return p.setContact(contact)
}

// Archive soft-deletes the party. Archiving twice keeps the first timestamp.
func (p *Party) Archive(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !p.active {
		return nil
	}

	p.active = false
	p.deactivatedAt = &now
	p.deactivatedReason = reason
	return nil
}

// Reactivate undoes Archive and clears the archive fields.
func (p *Party) Reactivate() {
	p.active = true
	p.deactivatedAt = nil
	p.deactivatedReason = ""
}

func (p *Party) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Party) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Party) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Party) setContact(c Contact) error {
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.TaxID = strings.TrimSpace(c.TaxID)

	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}

	p.contact = c
	return nil
}
