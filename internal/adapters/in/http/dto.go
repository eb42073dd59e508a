package http

import (
	"time"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/services"
)

// Error is the uniform error body for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItem is one order line as rendered on the board.
type LineItem struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	AddOns   []string `json:"addOns,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Order is one order as rendered on the board.
type Order struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	PlacedAt      time.Time  `json:"placedAt"`
	OrderType     string     `json:"orderType"`
	PaymentStatus string     `json:"paymentStatus"`
	Items         []LineItem `json:"items"`
	Notes         string     `json:"notes,omitempty"`
}

// PendingMutation is one unresolved optimistic change.
type PendingMutation struct {
	OrderID     string    `json:"orderId"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	State       string    `json:"state"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Board is the full render state of one view.
type Board struct {
	Columns   map[string][]Order `json:"columns"`
	Pending   []PendingMutation  `json:"pending"`
	Selection []string           `json:"selection"`
	BulkMode  bool               `json:"bulkMode"`
}

// StatusChangeRequest asks to move one or many orders to a target status.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// Outcome is the per-order result of a submission.
type Outcome struct {
	OrderID string `json:"orderId"`
	Result  string `json:"result"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BulkOutcome aggregates the outcomes of one bulk submission.
type BulkOutcome struct {
	Outcomes []Outcome `json:"outcomes"`
	Applied  int       `json:"applied"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
}

// SelectionRequest names the orders a selection operation targets.
type SelectionRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// ToggleSelectionRequest names a single order to toggle.
type ToggleSelectionRequest struct {
	OrderID string `json:"orderId"`
}

// BulkModeRequest switches bulk-selection mode.
type BulkModeRequest struct {
	Enabled bool `json:"enabled"`
}

// NextStatuses lists the legal successors of one status.
type NextStatuses struct {
	Status string   `json:"status"`
	Next   []string `json:"next"`
}

func toOrderResponse(o *order.Order) Order {
	items := o.Items()
	responses := make([]LineItem, len(items))
	for i, item := range items {
		responses[i] = LineItem{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			AddOns:   item.AddOns(),
			Notes:    item.Notes(),
		}
	}

	return Order{
		ID:            o.ID().String(),
		Status:        o.Status().String(),
		PlacedAt:      o.PlacedAt(),
		OrderType:     o.OrderType().String(),
		PaymentStatus: o.PaymentStatus().String(),
		Items:         responses,
		Notes:         o.Notes(),
	}
}

func toBoardResponse(board queries.GetBoardSnapshotQueryResponse) Board {
	columns := make(map[string][]Order, len(board.Snapshot.Columns))
	for status, orders := range board.Snapshot.Columns {
		column := make([]Order, len(orders))
		for i, o := range orders {
			column[i] = toOrderResponse(o)
		}
		columns[status.String()] = column
	}

	pending := make([]PendingMutation, len(board.Pending))
	for i, p := range board.Pending {
		pending[i] = toPendingResponse(p)
	}

	selection := make([]string, len(board.Selection))
	for i, id := range board.Selection {
		selection[i] = id.String()
	}

	return Board{
		Columns:   columns,
		Pending:   pending,
		Selection: selection,
		BulkMode:  board.BulkMode,
	}
}

func toPendingResponse(p session.PendingMutation) PendingMutation {
	state := "inFlight"
	if p.State == services.MutationConfirmed {
		state = "confirmed"
	}

	return PendingMutation{
		OrderID:     p.OrderID.String(),
		From:        p.From.String(),
		To:          p.To.String(),
		State:       state,
		SubmittedAt: p.SubmittedAt,
	}
}

func toOutcomeResponse(outcome commands.Outcome) Outcome {
	response := Outcome{
		OrderID: outcome.OrderID.String(),
		Result:  outcome.Kind.String(),
		Reason:  outcome.Reason,
	}
	if outcome.Err != nil {
		response.Error = outcome.Err.Error()
	}
	return response
}

func toBulkOutcomeResponse(result commands.BulkResult) BulkOutcome {
	outcomes := make([]Outcome, len(result.Outcomes))
	for i, outcome := range result.Outcomes {
		outcomes[i] = toOutcomeResponse(outcome)
	}

	return BulkOutcome{
		Outcomes: outcomes,
		Applied:  result.Applied,
		Skipped:  result.Skipped,
		Failed:   result.Failed,
	}
}
