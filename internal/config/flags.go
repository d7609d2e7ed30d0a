package config

import (
	"flag"
	"os"
	"time"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   local database path/DSN
//	-b string   cloud backup object name
//	-p int      real-time poll interval in seconds
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// packages do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database path")
	fs.StringVar(&cfg.BackupFileName, "b", cfg.BackupFileName, "cloud backup object name")
	pollSeconds := fs.Int("p", int(cfg.PollInterval.Seconds()), "poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollSeconds) * time.Second
}
