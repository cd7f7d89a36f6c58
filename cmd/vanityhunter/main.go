package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/pkg/generator/networks"
)

// options are the values bound to command line flags.
type options struct {
	logLevel   string
	configPath string

	caseSensitive bool
	maxSpeed      bool
	exactAttempts bool
	workers       int
	batchSize     int
	limit         int
	output        string
	network       string
	addressType   string
	timeout       time.Duration
}

func newRootCmd() *cobra.Command {
	return newCommand(&options{})
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vanityhunter [flags] TERM [TERM...]",
		Short: "Search for vanity wallet addresses",
		Long: "VanityHunter generates random keypairs on every CPU core until it finds\n" +
			"addresses containing one of the given terms. Results are written to a\n" +
			"JSON file as soon as they are found.",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	pf.StringVar(&opts.configPath, "config", "", "Config file (default is vanityhunter/config.toml in the user config dir)")

	f := cmd.Flags()
	f.BoolVar(&opts.caseSensitive, "case", false, "Match terms case-sensitively")
	f.BoolVar(&opts.maxSpeed, "max-speed", false, "Use 2 workers per CPU and larger batches")
	f.BoolVar(&opts.exactAttempts, "exact-attempts", false, "Count attempts made before a match in the same batch")
	f.IntVar(&opts.workers, "workers", 0, "Number of worker goroutines (default: one per CPU)")
	f.IntVar(&opts.batchSize, "batch", 0, "Candidates per worker between progress reports")
	f.IntVar(&opts.limit, "limit", 0, "Stop after this many results (0 searches until interrupted)")
	f.StringVar(&opts.output, "output", "", "Output file (default vanity-<unix-ms>.json)")
	f.StringVar(&opts.network, "network", "solana", "Network: "+strings.Join(networks.Names(), ", "))
	f.StringVar(&opts.addressType, "address-type", "", "Bitcoin address type: taproot, legacy, nested-segwit")
	f.DurationVar(&opts.timeout, "timeout", 0, "Stop after this long (0 disables)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.NewConsole(os.Stderr).PrintError(err)
		os.Exit(1)
	}
}
