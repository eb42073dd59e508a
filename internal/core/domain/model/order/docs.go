// Package order contains the order aggregate and its lifecycle state machine.
//
// The aggregate models a live restaurant order as synchronized between the
// external order store and the locally held board view. Its core is the
// Status value object, a forward-only workflow:
//
//	PENDING -> ACCEPTED -> IN_PROGRESS -> READY -> COMPLETED
//
// with CANCELLED reachable from PENDING, ACCEPTED and IN_PROGRESS only.
// COMPLETED and CANCELLED are terminal.
//
// Transition legality is a pure function over the closed status set:
// Status.CanTransitionTo answers yes/no, Status.TransitionTo computes the
// edge or rejects it with IllegalTransitionError, and Status.NextStatuses
// lists legal targets for rendering valid drop zones. No method in this
// package performs network or storage access.
package order
