package commands

import (
	"context"
	"sync"
	"time"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/ports"
)

// SubmitBulkStatusChangeCommandHandler applies one target status to every
// selected order. Each member goes through the same optimistic
// apply/round-trip/resolve sequence as a single submission; store round
// trips run concurrently.
//
// Partial failure is expected: members whose transition is illegal from
// their current status are skipped without network traffic, members the
// store rejects are rolled back, and the rest go through. The selection is
// cleared only when no member failed, so a failed batch leaves the
// selection intact for resubmission.
type SubmitBulkStatusChangeCommandHandler struct {
	single  SubmitStatusChangeCommandHandler
	session *session.BoardSession
}

// NewSubmitBulkStatusChangeCommandHandler creates a handler bound to one
// board session. A non-positive timeout falls back to DefaultMutationTimeout.
func NewSubmitBulkStatusChangeCommandHandler(
	store ports.OrderStore,
	boardSession *session.BoardSession,
	timeout time.Duration,
) SubmitBulkStatusChangeCommandHandler {
	return SubmitBulkStatusChangeCommandHandler{
		single:  NewSubmitStatusChangeCommandHandler(store, boardSession, timeout),
		session: boardSession,
	}
}

// Handle submits the target status for every member of the selection set as
// captured at this instant. Returns the per-order outcomes with their
// aggregate counts; the error return is reserved for an invalid command.
func (h SubmitBulkStatusChangeCommandHandler) Handle(
	ctx context.Context,
	command SubmitBulkStatusChangeCommand,
) (BulkResult, error) {
	if err := command.Validate(); err != nil {
		return BulkResult{}, err
	}

	members := h.session.SelectionMembers()
	outcomes := make([]Outcome, len(members))

	var wg sync.WaitGroup
	for i, orderID := range members {
		wg.Add(1)
		go func(i int, orderID kernel.UUID) {
			defer wg.Done()
			outcomes[i] = h.submitMember(ctx, orderID, command)
		}(i, orderID)
	}
	wg.Wait()

	var result BulkResult
	for _, outcome := range outcomes {
		result.add(outcome)
	}

	if result.Failed == 0 {
		h.session.ClearSelection()
	}

	return result, nil
}

// submitMember runs one member through the single-submission sequence. A
// member that left the view between selection and submission counts as
// failed rather than erroring the whole batch.
func (h SubmitBulkStatusChangeCommandHandler) submitMember(
	ctx context.Context,
	orderID kernel.UUID,
	command SubmitBulkStatusChangeCommand,
) Outcome {
	outcome, err := h.single.submit(ctx, orderID, command.Target())
	if err != nil {
		return Outcome{OrderID: orderID, Kind: OutcomeFailed, Err: err}
	}
	return outcome
}
