// Package services contains domain services coordinating behavior that does
// not belong to a single aggregate.
//
// The central service is Reconciler, which merges an authoritative order
// fetch into the locally held board view. It arbitrates between
// poll-fetched state and unresolved optimistic mutations, removes orders
// that left the view's filter, and detects newly-arrived and newly-ready
// orders for notification side effects.
//
// Services in this package are pure: no network, no storage, no clocks.
// All state they need arrives as explicit input, which keeps the merge
// rules exhaustively testable.
package services
