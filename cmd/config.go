package cmd

// Config carries all runtime settings, loaded from the environment.
//
// StoreMode selects the OrderStore implementation: "remote" talks to the
// hosted order service over HTTP (StoreBaseURL + StoreAuthToken required),
// "postgres" runs against the board's own database (DB* settings required).
type Config struct {
	HTTPPort string

	StoreMode      string
	StoreBaseURL   string
	StoreAuthToken string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Poll cadences as six-field cron expressions. Empty values fall back
	// to the defaults: board every five seconds, kitchen every second.
	BoardPollCron   string
	KitchenPollCron string

	// MutationTimeout bounds one store round trip, e.g. "5s". Empty falls
	// back to the handler default.
	MutationTimeout string
}
