// Package notification models the outbox of e-mail and web push messages and
// the push subscriptions they are delivered to.
//
// Messages are written in the same transaction as the business change that
// triggers them and are dispatched later, at most once. A delivery failure
// never affects the business change.
package notification
