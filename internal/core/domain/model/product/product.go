package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the level under which a stock counter is reported.
const LowStockThreshold = 200

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Stock holds the packaging counters of a product.
type Stock struct {
	Bottles int
	Caps    int
	Labels  int
}

// Shortage names one counter below LowStockThreshold.
type Shortage struct {
	Counter string
	Level   int
}

// Details carries the descriptive fields of a product.
type Details struct {
	Name        string
	Brand       string
	Category    string
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	WeightGrams int
}

// Product is a catalogue item. Its unit weight feeds the freight calculator.
// Archived products stay referenced by existing line items but are hidden from
// the catalogue and cannot be added to orders.
type Product struct {
	id      kernel.UUID
	details Details
	stock   Stock

	active            bool
	deactivatedAt     *time.Time
	deactivatedReason string

	isConstructed bool
}

func NewProduct(id kernel.UUID, details Details, stock Stock) (*Product, error) {
	p := &Product{active: true, isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestoreProduct(
	id kernel.UUID,
	details Details,
	stock Stock,
	active bool,
	deactivatedAt *time.Time,
	deactivatedReason string,
) (*Product, error) {
	p, err := NewProduct(id, details, stock)
	if err != nil {
		return nil, err
	}
	p.active = active
	if !active {
		p.deactivatedAt = deactivatedAt
		p.deactivatedReason = deactivatedReason
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Details() Details {
	return p.details
}

func (p *Product) Name() string {
	return p.details.Name
}

func (p *Product) WeightGrams() int {
	return p.details.WeightGrams
}

func (p *Product) Stock() Stock {
	return p.stock
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) DeactivatedAt() *time.Time {
	return p.deactivatedAt
}

func (p *Product) DeactivatedReason() string {
	return p.deactivatedReason
}

// IsFreight reports whether p is the sentinel freight product.
func (p *Product) IsFreight(freightID kernel.UUID) bool {
	return p.id.IsEqual(freightID)
}

// LowStock lists the counters under LowStockThreshold in a fixed order.
func (p *Product) LowStock() []Shortage {
	var shortages []Shortage
	for _, c := range []Shortage{
		{"bottles", p.stock.Bottles},
		{"caps", p.stock.Caps},
		{"labels", p.stock.Labels},
	} {
		if c.Level < LowStockThreshold {
			shortages = append(shortages, c)
		}
	}
	return shortages
}

func (p *Product) UpdateDetails(details Details) error {
	return p.setDetails(details)
}

func (p *Product) AdjustStock(stock Stock) error {
	return p.setStock(stock)
}

// Archive soft-deletes the product. Archiving an archived product keeps the
// original date and reason.
func (p *Product) Archive(reason string, now time.Time) error {
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

// Reactivate undoes Archive.
func (p *Product) Reactivate() {
	p.active = true
	p.deactivatedAt = nil
	p.deactivatedReason = ""
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Brand = strings.TrimSpace(d.Brand)
	d.Category = strings.TrimSpace(d.Category)

	var nameErr, weightErr error
	if d.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if d.WeightGrams < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is negative", d.WeightGrams))
	}

	if err := errors.Join(
		nameErr,
		weightErr,
		kernel.ValidateNonNegativeAmount("cost price", d.CostPrice),
		kernel.ValidateNonNegativeAmount("sale price", d.SalePrice),
	); err != nil {
		return err
	}

	p.details = d
	return nil
}

func (p *Product) setStock(s Stock) error {
	if s.Bottles < 0 || s.Caps < 0 || s.Labels < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("counters must not be negative: %+v", s))
	}
	p.stock = s
	return nil
}
