package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var (
	ErrGetNextStatusesQueryIsNotConstructed = errors.New(
		"GetNextStatusesQuery must be created via NewGetNextStatusesQuery constructor",
	)
)

// GetNextStatusesQuery asks which statuses are legally reachable from a
// given status. The presentation layer uses it to render exactly the
// action buttons that can succeed.
type GetNextStatusesQuery struct { //nolint:recvcheck //using for validation
	from order.Status

	guard guard.ConstructorGuard
}

// NewGetNextStatusesQuery creates a query for the legal successors of a status.
// Validates that the status is a defined workflow status.
func NewGetNextStatusesQuery(from order.Status) (GetNextStatusesQuery, error) {
	query := GetNextStatusesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFrom(from); err != nil {
		return GetNextStatusesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNextStatusesQueryIsNotConstructed if validation fails.
func (q GetNextStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetNextStatusesQueryIsNotConstructed)
}

// From returns the status whose successors are requested.
func (q GetNextStatusesQuery) From() order.Status {
	return q.from
}

func (q *GetNextStatusesQuery) setFrom(from order.Status) error {
	if err := from.Validate(); err != nil {
		return err
	}

	q.from = from
	return nil
}
