package queries

import (
	"context"

	"orderboard/internal/core/domain/model/order"
)

// GetNextStatusesQueryHandler answers successor queries straight from the
// workflow definition. It has no dependencies: the transition table is
// domain knowledge, not stored state.
type GetNextStatusesQueryHandler struct{}

// NewGetNextStatusesQueryHandler creates a handler for successor queries.
func NewGetNextStatusesQueryHandler() GetNextStatusesQueryHandler {
	return GetNextStatusesQueryHandler{}
}

// Handle returns the legal successor statuses, possibly empty for a
// terminal status. The result is a fresh slice the caller may modify.
func (h GetNextStatusesQueryHandler) Handle(
	_ context.Context,
	query GetNextStatusesQuery,
) ([]order.Status, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query.From().NextStatuses(), nil
}
