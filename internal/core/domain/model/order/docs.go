// Package order holds the Order aggregate of the business-management backend:
// its line items, its derived financial state and its status pipeline.
//
// The package includes:
//   - Order: the aggregate root owning line items, freight and the paid cache
//   - LineItem: a product row with quantity, unit price and unit cost
//   - Status: the production pipeline from NOVO PEDIDO to ENTREGUE
//   - StatusChange: one entry of the status history
//
// Key business rules:
//   - Total is the sum of line subtotals, freight line included
//   - Outstanding is always Total minus Paid
//   - Paid is only written from the payment ledger
//   - Moves other than one step forward are flagged out of order
//   - The freight line is managed through ApplyFreight only
package order
