// Package session holds the per-view board state: the order collection as
// currently known (the view snapshot), the pending-mutation table of the
// optimistic update layer, and the selection set for bulk actions.
//
// A BoardSession is created when a view mounts and closed when it unmounts;
// nothing in this package is ambient or global. Two independent event
// sources write into it — poll-driven merges and user-initiated mutations —
// and every write funnels through one serialized operation queue, so the
// snapshot and the selection set are each mutated by exactly one code path
// at a time. Poll merges therefore never interleave, and a new tick cannot
// begin merging before the previous tick's merge has completed.
package session
