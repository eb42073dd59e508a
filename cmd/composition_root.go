package cmd

import (
	"fmt"
	"log/slog"
	"time"

	boardhttp "orderboard/internal/adapters/in/http"
	"orderboard/internal/adapters/out/notify"
	"orderboard/internal/adapters/out/postgres/orderstore"
	"orderboard/internal/adapters/out/storeapi"
	"orderboard/internal/core/application/session"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/jobs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultBoardPollCron   = "*/5 * * * * *"
	defaultKitchenPollCron = "* * * * * *"
)

// CompositionRoot wires the adapters, sessions, and use case handlers
// into a runnable application. Two views are mounted for the lifetime of
// the process: the service board over all orders and the kitchen display
// over the active statuses only.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	store           ports.OrderStore
	boardSession    *session.BoardSession
	kitchenSession  *session.BoardSession
	boardFilter     ports.Filter
	kitchenFilter   ports.Filter
	mutationTimeout time.Duration
}

// NewCompositionRoot builds the application from configuration. A remote
// store mode without a credential is a fatal configuration error: there is
// no anonymous fallback.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := buildStore(config)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewSlogNotifier(logger)

	var mutationTimeout time.Duration
	if config.MutationTimeout != "" {
		if mutationTimeout, err = time.ParseDuration(config.MutationTimeout); err != nil {
			return nil, fmt.Errorf("invalid MUTATION_TIMEOUT: %w", err)
		}
	}

	return &CompositionRoot{
		config:         config,
		logger:         logger,
		store:          store,
		boardSession:   session.NewBoardSession(notifier, logger.With("view", "board")),
		kitchenSession: session.NewBoardSession(notifier, logger.With("view", "kitchen")),
		boardFilter:    ports.Filter{},
		kitchenFilter: ports.Filter{
			Statuses: []order.Status{order.Accepted, order.InProgress, order.Ready},
		},
		mutationTimeout: mutationTimeout,
	}, nil
}

func buildStore(config Config) (ports.OrderStore, error) {
	switch config.StoreMode {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err = db.AutoMigrate(&orderstore.OrderDTO{}, &orderstore.LineItemDTO{}); err != nil {
			return nil, fmt.Errorf("failed to migrate order schema: %w", err)
		}

		return orderstore.NewGormOrderStore(db), nil
	case "remote", "":
		tokens, err := storeapi.NewStaticTokenSource(config.StoreAuthToken)
		if err != nil {
			return nil, fmt.Errorf("STORE_AUTH_TOKEN is required in remote store mode: %w", err)
		}

		return storeapi.NewClient(config.StoreBaseURL, tokens)
	default:
		return nil, fmt.Errorf("unknown store mode %q", config.StoreMode)
	}
}

// CreateHTTPServer builds the REST surface over both views.
func (c *CompositionRoot) CreateHTTPServer() *boardhttp.Server {
	return boardhttp.NewServer(map[string]boardhttp.ViewHandlers{
		"board":   c.viewHandlers(c.boardSession, c.boardFilter),
		"kitchen": c.viewHandlers(c.kitchenSession, c.kitchenFilter),
	})
}

// CreateJobManager builds the poll jobs driving both views.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	boardCron := c.config.BoardPollCron
	if boardCron == "" {
		boardCron = defaultBoardPollCron
	}
	kitchenCron := c.config.KitchenPollCron
	if kitchenCron == "" {
		kitchenCron = defaultKitchenPollCron
	}

	return jobs.NewJobManager(c.logger,
		jobs.PollSpec{
			Name:    "board",
			Cron:    boardCron,
			Handler: commands.NewRefreshBoardCommandHandler(c.store, c.boardSession, c.boardFilter),
		},
		jobs.PollSpec{
			Name:    "kitchen",
			Cron:    kitchenCron,
			Handler: commands.NewRefreshBoardCommandHandler(c.store, c.kitchenSession, c.kitchenFilter),
		},
	)
}

// Close shuts the sessions down. Jobs must be stopped first.
func (c *CompositionRoot) Close() {
	c.boardSession.Close()
	c.kitchenSession.Close()
}

func (c *CompositionRoot) viewHandlers(s *session.BoardSession, filter ports.Filter) boardhttp.ViewHandlers {
	return boardhttp.ViewHandlers{
		Snapshot:     queries.NewGetBoardSnapshotQueryHandler(s),
		SubmitStatus: commands.NewSubmitStatusChangeCommandHandler(c.store, s, c.mutationTimeout),
		SubmitBulk:   commands.NewSubmitBulkStatusChangeCommandHandler(c.store, s, c.mutationTimeout),
		Refresh:      commands.NewRefreshBoardCommandHandler(c.store, s, filter),
		Session:      s,
	}
}
