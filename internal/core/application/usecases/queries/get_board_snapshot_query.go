// Package queries contains read operations for retrieving board state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/guard"
)

var (
	ErrGetBoardSnapshotQueryIsNotConstructed = errors.New(
		"GetBoardSnapshotQuery must be created via NewGetBoardSnapshotQuery constructor",
	)
)

// GetBoardSnapshotQuery retrieves the full render state of one board
// session: the order collection partitioned by status, the unresolved
// mutations, and the current selection.
//
// Example:
//
//	query := NewGetBoardSnapshotQuery()
//	handler := NewGetBoardSnapshotQueryHandler(boardSession)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read board: %w", err)
//	}
//	fmt.Printf("%d orders on the board\n", len(board.Snapshot.Orders))
type GetBoardSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoardSnapshotQuery creates a query to read the board state.
// This is a parameterless query that reads the complete view.
func NewGetBoardSnapshotQuery() GetBoardSnapshotQuery {
	return GetBoardSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBoardSnapshotQueryIsNotConstructed if validation fails.
func (q GetBoardSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardSnapshotQueryIsNotConstructed)
}

// GetBoardSnapshotQueryResponse is the board read model handed to the
// presentation layer. All orders in it are clones owned by the caller.
type GetBoardSnapshotQueryResponse struct {
	Snapshot  session.Snapshot
	Pending   []session.PendingMutation
	Selection []kernel.UUID
	BulkMode  bool
}
