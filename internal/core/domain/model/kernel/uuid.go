package kernel

import (
	"fmt"

	"gestion/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, payments, parties and every other record.
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewUUID()
//	same, err := kernel.UUIDFromString(id.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// MustNewUUIDFromString parses s and panics on failure. Intended for constants and tests.
func MustNewUUIDFromString(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUIDFromString parses the canonical, braced or urn form of a UUID.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from its 16 raw bytes, as stored by the repositories.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
