package services

import (
	"slices"

	"gestion/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a payment with the amount paid up to and including it.
type LedgerEntry struct {
	Payment      *payment.Payment
	RunningTotal decimal.Decimal
}

// Ledger is the reconciled view of an order's payments.
type Ledger struct {
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal

	// Entries are ordered by payment date, newest first.
	Entries []LedgerEntry
}

// PaymentLedger derives balances from the payment rows, which are the source
// of truth for the paid amount of an order.
type PaymentLedger struct{}

func NewPaymentLedger() PaymentLedger {
	return PaymentLedger{}
}

// Reconcile computes paid = Σ amounts and outstanding = total − paid.
// Running totals accumulate chronologically (paid at, then created at).
func (PaymentLedger) Reconcile(total decimal.Decimal, payments []*payment.Payment) Ledger {
	chronological := slices.Clone(payments)
	slices.SortStableFunc(chronological, func(a, b *payment.Payment) int {
		if c := a.PaidAt().Compare(b.PaidAt()); c != 0 {
			return c
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})

	entries := make([]LedgerEntry, len(chronological))
	paid := decimal.Zero
	for i, p := range chronological {
		paid = paid.Add(p.Amount())
		entries[len(entries)-1-i] = LedgerEntry{Payment: p, RunningTotal: paid}
	}

	return Ledger{
		Total:       total,
		Paid:        paid,
		Outstanding: total.Sub(paid),
		Entries:     entries,
	}
}

// Sum returns the total paid without building entries.
func (PaymentLedger) Sum(payments []*payment.Payment) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts(payments)...)
}

func amounts(payments []*payment.Payment) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(payments))
	for _, p := range payments {
		out = append(out, p.Amount())
	}
	return out
}
