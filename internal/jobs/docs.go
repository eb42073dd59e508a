// Package jobs provides scheduled background tasks for the order board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the periodic poll-and-reconcile cycle of each board view.
//
// # Available Jobs
//
// PollJob - runs a RefreshBoardCommand on a fixed cadence for one board
// session. Each view gets its own instance: the service board polls every
// five seconds over all orders, the kitchen display polls every second
// over the active statuses only.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.PollSpec{Name: "board", Cron: "*/5 * * * * *", Handler: boardRefresh},
//		jobs.PollSpec{Name: "kitchen", Cron: "* * * * * *", Handler: kitchenRefresh},
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the stale view stays up until the next
// tick succeeds; ticks never fail the process. Overlapping ticks are
// harmless because the session serializes merges.
package jobs
