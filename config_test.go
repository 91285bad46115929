// -*- tab-width:2 -*-

package copula

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("eps_rel: 1.0e-10\nworkers: 8\n"))
	require.NoError(t, err)

	assert.Equal(t, 1e-10, cfg.EpsRel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, DefaultConfig().EpsAbs, cfg.EpsAbs)
	assert.Equal(t, 500, cfg.Limit)
	assert.Equal(t, "none", cfg.LogLevel)

	empty, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), empty)
}

func TestParseConfigInvalid(t *testing.T) {
	testCases := []string{
		"limit: 0",
		"eps_abs: 0\neps_rel: 1.0e-16",
		"eps_abs: 0\neps_rel: 0",
		"eps_rel: -1",
	}

	for _, tc := range testCases {
		_, err := ParseConfig([]byte(tc))
		assert.ErrorIs(t, err, ErrParam, tc)
	}

	_, err := ParseConfig([]byte("limit: [1"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copula.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limit: 50\nlog_level: all\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Limit)
	assert.Equal(t, "all", cfg.LogLevel)

	// once the logger exists ApplyLogging must not replace it
	before := logger()
	cfg.ApplyLogging()
	assert.Same(t, before, logger())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResults(t *testing.T) {
	res := NewResults()
	res.Add("b", []float64{1, 2, 3})
	res.Add("a", []float64{4})
	res.Add("b", []float64{5, 6})

	assert.Equal(t, []string{"b", "a"}, res.Columns())
	assert.Equal(t, 2, res.Rows())

	b, ok := res.Get("b")
	assert.True(t, ok)
	assert.Equal(t, []float64{5, 6}, b)

	_, ok = res.Get("c")
	assert.False(t, ok)
}
