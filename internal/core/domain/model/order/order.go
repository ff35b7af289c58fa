package order

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrFreightLineIsManaged is returned when the freight line is added or removed
	// like a regular product. Use ApplyFreight instead.
	ErrFreightLineIsManaged = errors.New("freight line is managed by the freight calculator")
)

var numberPattern = regexp.MustCompile(`^PED-\d{6,}$`)

// FormatNumber renders a sequence value as an order number, e.g. PED-000042.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("PED-%06d", seq)
}

// Order is the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - Total equals the sum of line subtotals, freight line included
//   - Outstanding equals Total minus Paid
//   - At most one freight line exists
//   - Status is one of the six pipeline statuses
//
// Paid is a cache of the payment ledger. Only ReconcilePaid writes it.
type Order struct {
	id         kernel.UUID
	number     string
	status     Status
	clientID   kernel.UUID
	supplierID kernel.UUID
	notes      string

	items []*LineItem

	paid               decimal.Decimal
	freightWeightGrams int64
	freightCost        decimal.Decimal

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in status New with no line items.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.FormatNumber(1), clientID, supplierID, "", time.Now())
func NewOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	supplierID kernel.UUID,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		notes:         strings.TrimSpace(notes),
		items:         make([]*LineItem, 0),
		paid:          decimal.Zero,
		freightCost:   decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClientID(clientID),
		o.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID                 kernel.UUID
	Number             string
	Status             Status
	ClientID           kernel.UUID
	SupplierID         kernel.UUID
	Notes              string
	Items              []*LineItem
	Paid               decimal.Decimal
	FreightWeightGrams int64
	FreightCost        decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder rebuilds an order from persistence, validating every field.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		notes:         s.Notes,
		items:         make([]*LineItem, 0, len(s.Items)),
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setStatus(s.Status),
		o.setClientID(s.ClientID),
		o.setSupplierID(s.SupplierID),
		o.setItems(s.Items),
		o.setPaid(s.Paid),
		o.setFreight(s.FreightWeightGrams, s.FreightCost),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// LineItems returns a copy of the line item list, freight line included.
func (o *Order) LineItems() []*LineItem {
	return slices.Clone(o.items)
}

// RegularLineItems returns the line items without the freight line.
func (o *Order) RegularLineItems() []*LineItem {
	regular := make([]*LineItem, 0, len(o.items))
	for _, item := range o.items {
		if !item.IsFreight() {
			regular = append(regular, item)
		}
	}
	return regular
}

// FreightLine returns the freight line or nil when freight was never applied.
func (o *Order) FreightLine() *LineItem {
	for _, item := range o.items {
		if item.IsFreight() {
			return item
		}
	}
	return nil
}

func (o *Order) FreightWeightGrams() int64 {
	return o.freightWeightGrams
}

func (o *Order) FreightCost() decimal.Decimal {
	return o.freightCost
}

// Total is the sum of all line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Paid is the cached sum of the payment ledger.
func (o *Order) Paid() decimal.Decimal {
	return o.paid
}

// Outstanding is Total minus Paid. It is negative when the order is overpaid.
func (o *Order) Outstanding() decimal.Decimal {
	return o.Total().Sub(o.paid)
}

// UpdateNotes replaces the free-text notes.
func (o *Order) UpdateNotes(notes string, now time.Time) {
	o.notes = strings.TrimSpace(notes)
	o.touch(now)
}

// AddLineItem appends a regular product line.
func (o *Order) AddLineItem(item *LineItem, now time.Time) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.IsFreight() {
		return ErrFreightLineIsManaged
	}
	if o.indexOf(item.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item", fmt.Errorf("%s already exists", item.ID()))
	}

	o.items = append(o.items, item)
	o.touch(now)
	return nil
}

// RemoveLineItem deletes a regular product line.
func (o *Order) RemoveLineItem(itemID kernel.UUID, now time.Time) error {
	idx := o.indexOf(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("line item", itemID.String())
	}
	if o.items[idx].IsFreight() {
		return ErrFreightLineIsManaged
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.touch(now)
	return nil
}

// ApplyFreight writes the freight weight and cost and upserts the freight line
// (quantity 1, unit price and unit cost equal to cost).
func (o *Order) ApplyFreight(weightGrams int64, cost decimal.Decimal, now time.Time) error {
	if err := o.setFreight(weightGrams, cost); err != nil {
		return err
	}

	line, err := newFreightLine(cost)
	if err != nil {
		return err
	}

	if existing := o.FreightLine(); existing != nil {
		line.id = existing.id
		o.items[o.indexOf(existing.id)] = line
	} else {
		o.items = append(o.items, line)
	}

	o.touch(now)
	return nil
}

// ReconcilePaid overwrites the paid cache with the ledger sum.
func (o *Order) ReconcilePaid(paid decimal.Decimal, now time.Time) error {
	if err := o.setPaid(paid); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// ChangeStatus moves the order to target.
//
// Returns (nil, nil) when target equals the current status. Out-of-order moves
// require override; the returned StatusChange then has OutOfOrder set.
func (o *Order) ChangeStatus(target Status, override bool, actorID kernel.UUID, now time.Time) (*StatusChange, error) {
	if target == o.status {
		return nil, nil
	}

	next, outOfOrder, err := o.status.Transition(target, override)
	if err != nil {
		return nil, err
	}

	change, err := NewStatusChange(o.id, o.status, next, actorID, outOfOrder, now)
	if err != nil {
		return nil, err
	}

	o.status = next
	o.touch(now)
	return change, nil
}

func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) indexOf(itemID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(item *LineItem) bool {
		return item.ID().IsEqual(itemID)
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q does not match PED-000000", number))
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier", err)
	}
	o.supplierID = id
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	freightLines := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.IsFreight() {
			freightLines++
		}
	}
	if freightLines > 1 {
		return errs.NewValueIsInvalidErrorWithCause("line items", fmt.Errorf("%d freight lines", freightLines))
	}
	o.items = append(o.items, items...)
	return nil
}

func (o *Order) setPaid(paid decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("paid", paid); err != nil {
		return err
	}
	o.paid = paid
	return nil
}

func (o *Order) setFreight(weightGrams int64, cost decimal.Decimal) error {
	if weightGrams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("freight weight", fmt.Errorf("%d is negative", weightGrams))
	}
	if err := kernel.ValidateNonNegativeAmount("freight cost", cost); err != nil {
		return err
	}
	o.freightWeightGrams = weightGrams
	o.freightCost = cost
	return nil
}
