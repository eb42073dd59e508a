// Package http exposes the board over a REST surface. It coordinates
// between HTTP handlers and application use cases; all board semantics
// live below it.
package http

import (
	"errors"
	"net/http"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ViewHandlers bundles the use case handlers bound to one board view.
// Each mounted view (service board, kitchen display) gets its own bundle
// around its own session.
type ViewHandlers struct {
	Snapshot     queries.GetBoardSnapshotQueryHandler
	SubmitStatus commands.SubmitStatusChangeCommandHandler
	SubmitBulk   commands.SubmitBulkStatusChangeCommandHandler
	Refresh      commands.RefreshBoardCommandHandler
	Session      *session.BoardSession
}

// Server routes HTTP requests to the views' use case handlers.
type Server struct {
	views        map[string]ViewHandlers
	nextStatuses queries.GetNextStatusesQueryHandler
}

// NewServer creates an HTTP server over the given named views.
func NewServer(views map[string]ViewHandlers) *Server {
	return &Server{
		views:        views,
		nextStatuses: queries.NewGetNextStatusesQueryHandler(),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/statuses/:status/next", s.GetNextStatuses)

	views := e.Group("/api/v1/views/:view")
	views.GET("/board", s.GetBoard)
	views.POST("/refresh", s.RefreshBoard)
	views.POST("/orders/:orderID/status", s.SubmitStatusChange)
	views.POST("/orders/status", s.SubmitBulkStatusChange)
	views.POST("/selection/toggle", s.ToggleSelection)
	views.POST("/selection/add", s.AddSelection)
	views.POST("/selection/remove", s.RemoveSelection)
	views.DELETE("/selection", s.ClearSelection)
	views.PUT("/bulk-mode", s.SetBulkMode)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetBoard handles GET /api/v1/views/:view/board - the full render state.
func (s *Server) GetBoard(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	board, err := view.Snapshot.Handle(ctx.Request().Context(), queries.NewGetBoardSnapshotQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read board",
		})
	}

	return ctx.JSON(http.StatusOK, toBoardResponse(board))
}

// RefreshBoard handles POST /api/v1/views/:view/refresh - one on-demand
// fetch-and-reconcile cycle, same code path as the poll jobs.
func (s *Server) RefreshBoard(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	if err := view.Refresh.Handle(ctx.Request().Context(), commands.NewRefreshBoardCommand()); err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Refresh failed: " + err.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitStatusChange handles POST /api/v1/views/:view/orders/:orderID/status.
func (s *Server) SubmitStatusChange(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	target, ok := s.bindTargetStatus(ctx)
	if !ok {
		return nil // response already written
	}

	cmd, err := commands.NewSubmitStatusChangeCommand(orderID, target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	outcome, err := view.SubmitStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return submissionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOutcomeResponse(outcome))
}

// SubmitBulkStatusChange handles POST /api/v1/views/:view/orders/status -
// one target status applied to every selected order.
func (s *Server) SubmitBulkStatusChange(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	target, ok := s.bindTargetStatus(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewSubmitBulkStatusChangeCommand(target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	result, err := view.SubmitBulk.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return submissionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOutcomeResponse(result))
}

// GetNextStatuses handles GET /api/v1/statuses/:status/next - the legal
// successor statuses, for rendering exactly the action buttons that can
// succeed.
func (s *Server) GetNextStatuses(ctx echo.Context) error {
	from, err := order.StatusFromName(ctx.Param("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status",
		})
	}

	query, err := queries.NewGetNextStatusesQuery(from)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status",
		})
	}

	next, err := s.nextStatuses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute successors",
		})
	}

	names := make([]string, len(next))
	for i, status := range next {
		names[i] = status.String()
	}

	return ctx.JSON(http.StatusOK, NextStatuses{Status: from.String(), Next: names})
}

// ToggleSelection handles POST /api/v1/views/:view/selection/toggle.
func (s *Server) ToggleSelection(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	var request ToggleSelectionRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if err = view.Session.ToggleSelection(orderID); err != nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order is not on the board",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddSelection handles POST /api/v1/views/:view/selection/add.
func (s *Server) AddSelection(ctx echo.Context) error {
	return s.selectMany(ctx, func(view ViewHandlers, ids []kernel.UUID) {
		view.Session.AddSelection(ids)
	})
}

// RemoveSelection handles POST /api/v1/views/:view/selection/remove.
func (s *Server) RemoveSelection(ctx echo.Context) error {
	return s.selectMany(ctx, func(view ViewHandlers, ids []kernel.UUID) {
		view.Session.RemoveSelection(ids)
	})
}

// ClearSelection handles DELETE /api/v1/views/:view/selection.
func (s *Server) ClearSelection(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	view.Session.ClearSelection()
	return ctx.NoContent(http.StatusNoContent)
}

// SetBulkMode handles PUT /api/v1/views/:view/bulk-mode.
func (s *Server) SetBulkMode(ctx echo.Context) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	var request BulkModeRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	view.Session.SetBulkMode(request.Enabled)
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) view(ctx echo.Context) (ViewHandlers, bool) {
	view, ok := s.views[ctx.Param("view")]
	return view, ok
}

func (s *Server) bindTargetStatus(ctx echo.Context) (order.Status, bool) {
	var request StatusChangeRequest
	if err := ctx.Bind(&request); err != nil {
		_ = invalidBody(ctx)
		return order.Unknown, false
	}

	target, err := order.StatusFromName(request.Status)
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status",
		})
		return order.Unknown, false
	}

	return target, true
}

func (s *Server) selectMany(ctx echo.Context, apply func(ViewHandlers, []kernel.UUID)) error {
	view, ok := s.view(ctx)
	if !ok {
		return unknownView(ctx)
	}

	var request SelectionRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	ids := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order id: " + raw,
			})
		}
		ids = append(ids, id)
	}

	apply(view, ids)
	return ctx.NoContent(http.StatusNoContent)
}

func unknownView(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: "Unknown view",
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func submissionError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order is not on the board",
		})
	}

	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Submission rejected: " + err.Error(),
	})
}
