package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Dim)
	assert.Equal(t, 100, cfg.Check.Trials)
	assert.Equal(t, -1000, cfg.Check.Min)
	assert.Equal(t, 1000, cfg.Check.Max)
	assert.Equal(t, log.LevelInfo, cfg.LogLevel())
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(`
dim: 2
check:
  trials: 10
  seed: 99
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Dim)
	assert.Equal(t, 10, cfg.Check.Trials)
	assert.Equal(t, -1000, cfg.Check.Min, "unset keys keep defaults")
	assert.Equal(t, uint64(99), cfg.Check.Seed)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
}

func TestLoadYAMLEmptyIsDefault(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"dim":        "dim: 0",
		"trials":     "check:\n  trials: 0",
		"range":      "check:\n  min: 10\n  max: 10",
		"log level":  "log:\n  level: chatty",
		"wide range": "check:\n  min: -6000000000000000000\n  max: 6000000000000000000",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("dimension: 3"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dim: 4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Dim)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSamplerHonoursSeed(t *testing.T) {
	cfg := Default()
	cfg.Check.Seed = 5
	s, err := cfg.Sampler()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), s.Seed())

	cfg.Check.Seed = 0
	s, err = cfg.Sampler()
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLevelOptionsBuildLevel(t *testing.T) {
	cfg := Default()
	cfg.Check.Trials = 3
	cfg.Check.Min, cfg.Check.Max = 0, 1

	e, err := level.NewEuclidean(cfg.Dim, cfg.LevelOptions(level.NewRandSampler(1), log.NewNop())...)
	require.NoError(t, err)

	report, err := e.Verify(func(p, m []int) ([]int, error) {
		assert.Equal(t, []int{0, 0, 0}, p)
		assert.Equal(t, []int{0, 0, 0}, m)
		return []int{0, 0, 0}, nil
	})
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 3, report.Trials)
}
