// Package party models clients and suppliers. Both share one type with a Kind.
//
// Parties are never hard-deleted: Archive sets active=false and records when
// and why; Reactivate clears both.
package party
