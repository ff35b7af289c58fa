package order

import (
	"errors"
	"fmt"
	"strings"

	"gestion/internal/pkg/errs"
)

// ErrTransitionNotAllowed is returned when a status change skips steps, moves
// backwards or leaves the terminal status unless out-of-order moves are allowed.
var ErrTransitionNotAllowed = errors.New("status transition is not allowed")

// Status is a step of the order production pipeline.
//
// Pipeline (strict order):
//
//	NOVO PEDIDO ──> MATÉRIA PRIMA ──> PRODUÇÃO ──> EMBALAGENS ──> TRANSPORTE ──> ENTREGUE
//
// Each status allows its immediate successor only. Any other target is an
// out-of-order move: rejected unless the caller allows it, then flagged.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// New is the initial status of every order.
	New

	// RawMaterial means raw material is being sourced.
	RawMaterial

	// Production means the goods are being produced.
	Production

	// Packaging means the goods are being packed.
	Packaging

	// Transport means the order left for delivery.
	Transport

	// Delivered is terminal.
	Delivered
)

var statusNames = map[Status]string{
	New:         "NOVO PEDIDO",
	RawMaterial: "MATÉRIA PRIMA",
	Production:  "PRODUÇÃO",
	Packaging:   "EMBALAGENS",
	Transport:   "TRANSPORTE",
	Delivered:   "ENTREGUE",
}

// transitions is the explicit transition table.
var transitions = map[Status]Status{
	New:         RawMaterial,
	RawMaterial: Production,
	Production:  Packaging,
	Packaging:   Transport,
	Transport:   Delivered,
}

// Statuses returns every valid status in pipeline order.
func Statuses() []Status {
	return []Status{New, RawMaterial, Production, Packaging, Transport, Delivered}
}

// ParseStatus maps a wire string to a Status. Matching ignores surrounding
// whitespace and letter case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the six pipeline statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire string, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no forward transition exists.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the immediate successor, if any.
func (s Status) Next() (Status, bool) {
	next, ok := transitions[s]
	return next, ok
}

// CanTransitionTo reports whether target is the immediate successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := transitions[s]
	return ok && next == target
}

// Transition validates a move from s to target.
//
// Returns outOfOrder=true when the move is only allowed because allowOutOfOrder
// is set. A move to the same status is reported as an error by the caller, see
// Order.ChangeStatus.
func (s Status) Transition(target Status, allowOutOfOrder bool) (next Status, outOfOrder bool, err error) {
	if err = target.Validate(); err != nil {
		return Unknown, false, err
	}
	if s.CanTransitionTo(target) {
		return target, false, nil
	}
	if !allowOutOfOrder {
		return Unknown, false, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, target)
	}
	return target, true, nil
}
