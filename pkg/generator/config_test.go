package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Terms:     []string{"Moon", "DOGE"},
		Workers:   2,
		BatchSize: 10,
	}
}

func TestNormalizeLowercasesTerms(t *testing.T) {
	cfg := validConfig()
	out, err := cfg.Normalize()
	require.NoError(t, err)

	assert.Equal(t, []string{"moon", "doge"}, out.Terms)
	assert.Equal(t, DefaultShutdownGrace, out.ShutdownGrace)
	assert.True(t, out.Unbounded())

	// The original is left untouched.
	assert.Equal(t, []string{"Moon", "DOGE"}, cfg.Terms)
}

func TestNormalizeKeepsCaseWhenSensitive(t *testing.T) {
	cfg := validConfig()
	cfg.CaseSensitive = true
	out, err := cfg.Normalize()
	require.NoError(t, err)
	assert.Equal(t, []string{"Moon", "DOGE"}, out.Terms)
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no terms", func(c *Config) { c.Terms = nil }, ErrNoTerms},
		{"empty term", func(c *Config) { c.Terms = []string{"ok", ""} }, ErrEmptyTerm},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"negative limit", func(c *Config) { c.MaxResults = -1 }, ErrInvalidMaxResults},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			_, err := cfg.Normalize()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDefaultsBySpeedMode(t *testing.T) {
	assert.Equal(t, DefaultBatchSize, DefaultBatch(false))
	assert.Equal(t, MaxSpeedBatchSize, DefaultBatch(true))
	assert.Equal(t, 2*DefaultWorkers(false), DefaultWorkers(true))
}
