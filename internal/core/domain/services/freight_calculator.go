package services

import (
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrFreightNotAvailable is returned when freight is committed on an order with
// no regular line items.
var ErrFreightNotAvailable = errors.New("freight is not available for an order without products")

// FreightRatePerKg is the fixed freight rate in euro per kilogram.
var FreightRatePerKg = decimal.RequireFromString("5.85")

var gramsPerKg = decimal.NewFromInt(1000)

// FreightItem is the weight input of one line.
type FreightItem struct {
	Quantity        int
	UnitWeightGrams int
	IsFreight       bool
}

// Freight is the result of a freight calculation. Values keep full precision;
// only Display rounds.
type Freight struct {
	weightGrams int64
	cost        decimal.Decimal
	enabled     bool
}

func (f Freight) WeightGrams() int64 {
	return f.weightGrams
}

func (f Freight) Kilograms() decimal.Decimal {
	return decimal.NewFromInt(f.weightGrams).Div(gramsPerKg)
}

func (f Freight) Cost() decimal.Decimal {
	return f.cost
}

// Enabled is false when the order has no regular line items.
func (f Freight) Enabled() bool {
	return f.enabled
}

// Display renders the cost rounded to 2 decimals, e.g. "6.14".
func (f Freight) Display() string {
	return f.cost.StringFixed(2)
}

// FreightCalculator computes freight as total kilograms × FreightRatePerKg.
//
// Example:
//
//	f := services.NewFreightCalculator().Calculate([]services.FreightItem{{Quantity: 1, UnitWeightGrams: 1050}})
//	f.Cost()    // 6.1425
//	f.Display() // "6.14"
type FreightCalculator struct {
	rate decimal.Decimal
}

func NewFreightCalculator() FreightCalculator {
	return FreightCalculator{rate: FreightRatePerKg}
}

// Calculate sums quantity × unit weight over all non-freight items.
func (c FreightCalculator) Calculate(items []FreightItem) Freight {
	var grams int64
	regular := 0
	for _, item := range items {
		if item.IsFreight {
			continue
		}
		regular++
		grams += int64(item.Quantity) * int64(item.UnitWeightGrams)
	}

	if regular == 0 {
		return Freight{cost: decimal.Zero}
	}

	return Freight{
		weightGrams: grams,
		cost:        decimal.NewFromInt(grams).Div(gramsPerKg).Mul(c.rate),
		enabled:     true,
	}
}

// CalculateForOrder builds the freight items of o from product unit weights.
// Every regular line must have a weight entry.
func (c FreightCalculator) CalculateForOrder(o *order.Order, weights map[kernel.UUID]int) (Freight, error) {
	if err := o.Validate(); err != nil {
		return Freight{}, err
	}

	lines := o.RegularLineItems()
	items := make([]FreightItem, 0, len(lines))
	for _, line := range lines {
		weight, ok := weights[line.ProductID()]
		if !ok {
			return Freight{}, errs.NewObjectNotFoundError("product", line.ProductID().String())
		}
		items = append(items, FreightItem{Quantity: line.Quantity(), UnitWeightGrams: weight})
	}

	return c.Calculate(items), nil
}
