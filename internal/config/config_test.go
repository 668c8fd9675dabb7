package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "polynomial.yaml")
	src := "variable: t\nprecision: 128\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))

	cfg, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, "t", cfg.Variable)
	assert.Equal(t, uint(128), cfg.Precision)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep defaults.
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, uint(4096), cfg.MaxPrecision)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown-key":   "colour: blue\n",
		"long-variable": "variable: xy\n",
		"bad-variable":  "variable: \"^\"\n",
		"digit":         "variable: \"7\"\n",
		"empty-addr":    "addr: \"\"\n",
		"bad-level":     "log_level: loud\n",
		"bad-type":      "precision: lots\n",
		"zero-max":      "max_precision: 0\n",
		"over-max":      "precision: 8192\n",
		"over-own-max":  "precision: 256\nmax_precision: 128\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestVarOption(t *testing.T) {
	cfg := Default()
	cfg.Variable = "θ"
	opt, err := cfg.VarOption()
	require.NoError(t, err)
	assert.NotNil(t, opt)
}
