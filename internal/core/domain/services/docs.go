// Package services holds domain logic that spans aggregates or derives values
// from several of them.
//
// The package includes:
//   - FreightCalculator: weight-based freight cost of an order
//   - PaymentLedger: paid and outstanding balances with running totals
//   - NotificationComposer: outbox messages for business events
package services
