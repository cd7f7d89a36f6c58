package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Amr-9/VanityHunter/internal/config"
	"github.com/Amr-9/VanityHunter/internal/output"
	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/cpu"
	"github.com/Amr-9/VanityHunter/pkg/generator/networks"
)

// searchPlan is everything runSearch needs once flags and config are merged.
type searchPlan struct {
	profile  networks.Profile
	cfg      generator.Config
	output   string
	maxSpeed bool
}

func runSearch(cmd *cobra.Command, opts *options, args []string) error {
	// Argument errors print usage; failures after this point don't.
	cmd.SilenceUsage = true

	plan, err := buildPlan(cmd, opts, args, time.Now())
	if err != nil {
		return err
	}

	console := ui.NewConsole(os.Stdout)
	writer := output.NewWriter(plan.output)

	gen, err := cpu.NewCPUGenerator(plan.cfg, plan.profile.Deriver,
		cpu.WithSink(&consoleSink{console: console, next: writer}),
		cpu.WithLogger(log.Logger),
		cpu.WithNetworkName(plan.profile.Name()),
	)
	if err != nil {
		return err
	}

	if plan.maxSpeed {
		if err := raisePriority(); err != nil {
			log.Warn().Err(err).Msg("Couldn't raise process priority")
		}
	}

	cfg := gen.Config()
	console.PrintBanner(version)
	console.PrintSearchInfo(ui.SearchInfo{
		Network:  plan.profile.Name(),
		Terms:    cfg.Terms,
		Workers:  cfg.Workers,
		Batch:    cfg.BatchSize,
		MaxSpeed: plan.maxSpeed,
		Limit:    cfg.MaxResults,
		Output:   writer.Path(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		for p := range gen.Progress() {
			console.PrintProgress(p)
		}
	}()

	summary, err := gen.Run(ctx)
	<-rendered
	console.PrintFinalStats(summary, writer.Path())
	return err
}

// buildPlan merges config file values under the flags and validates the
// result. Flags set on the command line always win.
func buildPlan(cmd *cobra.Command, opts *options, terms []string, now time.Time) (*searchPlan, error) {
	file, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(name string) bool { return flags.Changed(name) }

	if !cmd.Root().PersistentFlags().Changed("log-level") && file.LogLevel != "" {
		setupLogging(file.LogLevel)
	}

	net, addrType := opts.network, opts.addressType
	if !set("network") && file.Network != "" {
		net = file.Network
	}
	if !set("address-type") && file.AddressType != "" {
		addrType = file.AddressType
	}
	profile, err := networks.Lookup(net, addrType)
	if err != nil {
		return nil, err
	}

	speed := pick(set("max-speed"), opts.maxSpeed, file.MaxSpeed)
	cfg := generator.Config{
		Terms:         terms,
		CaseSensitive: pick(set("case"), opts.caseSensitive, file.CaseSensitive),
		ExactAttempts: pick(set("exact-attempts"), opts.exactAttempts, file.ExactAttempts),
		Workers:       pick(set("workers"), opts.workers, file.Workers),
		BatchSize:     pick(set("batch"), opts.batchSize, file.Batch),
		MaxResults:    pick(set("limit"), opts.limit, file.Limit),
		Timeout:       pick(set("timeout"), opts.timeout, file.Timeout.Duration),
		ShutdownGrace: file.ShutdownGrace.Duration,
	}
	if !set("workers") && cfg.Workers == 0 {
		cfg.Workers = generator.DefaultWorkers(speed)
	}
	if !set("batch") && cfg.BatchSize == 0 {
		cfg.BatchSize = generator.DefaultBatch(speed)
	}

	norm, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if err := profile.Charset.Validate(norm.Terms, norm.CaseSensitive); err != nil {
		return nil, err
	}

	path := opts.output
	if !set("output") || path == "" {
		path = output.DefaultPath(file.OutputDir, now)
	}

	return &searchPlan{
		profile:  profile,
		cfg:      norm,
		output:   path,
		maxSpeed: speed,
	}, nil
}

// pick returns the flag value when the flag was given, else the file value
// if it is set, else the flag default.
func pick[T comparable](changed bool, flag, file T) T {
	var zero T
	if changed || file == zero {
		return flag
	}
	return file
}

// consoleSink prints every accepted result before handing it on for
// persistence. Persistence errors are returned, not printed; the search
// loop logs them.
type consoleSink struct {
	console *ui.Console
	next    generator.ResultSink
}

func (s *consoleSink) Begin(info generator.RunInfo) error {
	return s.next.Begin(info)
}

func (s *consoleSink) Record(rec generator.ResultRecord, stats generator.Snapshot) error {
	s.console.PrintMatch(rec)
	return s.next.Record(rec, stats)
}

func (s *consoleSink) Finish(stats generator.Snapshot) error {
	return s.next.Finish(stats)
}
