package queries

import (
	"context"

	"orderboard/internal/core/application/session"
)

// GetBoardSnapshotQueryHandler reads the render state of one board session.
type GetBoardSnapshotQueryHandler struct {
	session *session.BoardSession
}

// NewGetBoardSnapshotQueryHandler creates a handler bound to one board session.
func NewGetBoardSnapshotQueryHandler(boardSession *session.BoardSession) GetBoardSnapshotQueryHandler {
	return GetBoardSnapshotQueryHandler{session: boardSession}
}

// Handle reads the board state. Each piece is read atomically against the
// session's operation queue; the composite is a consistent-enough render
// model for a view that is re-polled every few seconds anyway.
func (h GetBoardSnapshotQueryHandler) Handle(
	_ context.Context,
	query GetBoardSnapshotQuery,
) (GetBoardSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardSnapshotQueryResponse{}, err
	}

	return GetBoardSnapshotQueryResponse{
		Snapshot:  h.session.Snapshot(),
		Pending:   h.session.PendingMutations(),
		Selection: h.session.SelectionMembers(),
		BulkMode:  h.session.InBulkMode(),
	}, nil
}
