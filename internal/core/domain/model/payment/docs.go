// Package payment models the append-only payment ledger of an order.
// Payments are never edited; deleting a row is the only mutation.
package payment
