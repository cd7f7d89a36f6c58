package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

var now = time.UnixMilli(1700000000000)

// parse builds a fresh root command and parses args without running it.
func parse(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

// isolate points the default config location at an empty directory.
func isolate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestBuildPlanDefaults(t *testing.T) {
	isolate(t)
	cmd, opts := parse(t)

	plan, err := buildPlan(cmd, opts, []string{"Moon"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Solana", plan.profile.Name())
	assert.Equal(t, []string{"moon"}, plan.cfg.Terms)
	assert.False(t, plan.cfg.CaseSensitive)
	assert.Equal(t, generator.DefaultWorkers(false), plan.cfg.Workers)
	assert.Equal(t, generator.DefaultBatchSize, plan.cfg.BatchSize)
	assert.True(t, plan.cfg.Unbounded())
	assert.Equal(t, "vanity-1700000000000.json", plan.output)
	assert.False(t, plan.maxSpeed)
}

func TestBuildPlanMaxSpeed(t *testing.T) {
	isolate(t)
	cmd, opts := parse(t, "--max-speed")

	plan, err := buildPlan(cmd, opts, []string{"moon"}, now)
	require.NoError(t, err)
	assert.True(t, plan.maxSpeed)
	assert.Equal(t, generator.DefaultWorkers(true), plan.cfg.Workers)
	assert.Equal(t, generator.MaxSpeedBatchSize, plan.cfg.BatchSize)
}

func TestBuildPlanFlags(t *testing.T) {
	isolate(t)
	cmd, opts := parse(t,
		"--case", "--workers=3", "--batch=500", "--limit=2",
		"--output=found.json", "--network=bitcoin", "--address-type=legacy",
		"--timeout=1m", "--exact-attempts")

	plan, err := buildPlan(cmd, opts, []string{"Ab"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Bitcoin Legacy (P2PKH)", plan.profile.Name())
	assert.Equal(t, []string{"Ab"}, plan.cfg.Terms)
	assert.True(t, plan.cfg.CaseSensitive)
	assert.True(t, plan.cfg.ExactAttempts)
	assert.Equal(t, 3, plan.cfg.Workers)
	assert.Equal(t, 500, plan.cfg.BatchSize)
	assert.Equal(t, 2, plan.cfg.MaxResults)
	assert.Equal(t, time.Minute, plan.cfg.Timeout)
	assert.Equal(t, "found.json", plan.output)
}

func TestBuildPlanConfigFileUnderFlags(t *testing.T) {
	path := writeConfig(t, `
network = "ethereum"
workers = 5
limit = 7
output_dir = "results"
shutdown_grace = "1s"
`)
	cmd, opts := parse(t, "--config="+path, "--limit=1")

	plan, err := buildPlan(cmd, opts, []string{"beef"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Ethereum", plan.profile.Name())
	assert.Equal(t, 5, plan.cfg.Workers)
	assert.Equal(t, 1, plan.cfg.MaxResults, "flag wins over file")
	assert.Equal(t, time.Second, plan.cfg.ShutdownGrace)
	assert.Equal(t, filepath.Join("results", "vanity-1700000000000.json"), plan.output)
}

func TestBuildPlanRejectsImpossibleTerm(t *testing.T) {
	isolate(t)
	cmd, opts := parse(t)

	_, err := buildPlan(cmd, opts, []string{"m0on"}, now)
	var invalid *generator.InvalidCharsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []rune{'0'}, invalid.Chars)
}

func TestBuildPlanPrefixCharsOnlyInPrefix(t *testing.T) {
	isolate(t)

	cmd, opts := parse(t, "--network=ethereum")
	_, err := buildPlan(cmd, opts, []string{"ax"}, now)
	var invalid *generator.InvalidCharsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []rune{'x'}, invalid.Chars)

	cmd, opts = parse(t, "--network=ethereum")
	_, err = buildPlan(cmd, opts, []string{"0xdead"}, now)
	assert.NoError(t, err)

	cmd, opts = parse(t, "--network=bitcoin")
	_, err = buildPlan(cmd, opts, []string{"1b"}, now)
	assert.ErrorAs(t, err, &invalid)
}

func TestBuildPlanRejectsInvalidConfig(t *testing.T) {
	isolate(t)

	cmd, opts := parse(t, "--workers=0")
	_, err := buildPlan(cmd, opts, []string{"moon"}, now)
	assert.ErrorIs(t, err, generator.ErrInvalidWorkers)

	cmd, opts = parse(t, "--network=dogecoin")
	_, err = buildPlan(cmd, opts, []string{"moon"}, now)
	assert.Error(t, err)

	cmd, opts = parse(t, "--config="+filepath.Join(t.TempDir(), "missing.toml"))
	_, err = buildPlan(cmd, opts, []string{"moon"}, now)
	assert.Error(t, err)
}

func TestRootRequiresTerms(t *testing.T) {
	isolate(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "vanityhunter version "+version)
}

type failingSink struct{ err error }

func (s failingSink) Begin(generator.RunInfo) error                           { return nil }
func (s failingSink) Record(generator.ResultRecord, generator.Snapshot) error { return s.err }
func (s failingSink) Finish(generator.Snapshot) error                         { return nil }

func TestConsoleSinkPrintsAndForwards(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("disk full")
	sink := &consoleSink{console: ui.NewConsole(&buf), next: failingSink{err: boom}}

	err := sink.Record(generator.ResultRecord{ID: 1, Address: "moonX", Term: "moon"}, generator.Snapshot{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "moonX")
	// The search loop logs persistence errors; the sink only returns them.
	assert.NotContains(t, buf.String(), "disk full")
}
