package config

import (
	"flag"
	"os"
	"time"

	"github.com/avryabov/eventhub-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-auth string      auth endpoint URL
//	-events string    events endpoint URL
//	-payment string   payment endpoint URL
//	-d string         local sqlite database path
//	-t int            request timeout in seconds (0 disables)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-auth", "-events", "-payment", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpoint, "auth", cfg.AuthEndpoint, "auth endpoint URL")
	fs.StringVar(&cfg.EventsEndpoint, "events", cfg.EventsEndpoint, "events endpoint URL")
	fs.StringVar(&cfg.PaymentEndpoint, "payment", cfg.PaymentEndpoint, "payment endpoint URL")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
