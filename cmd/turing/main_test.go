package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turing/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(viper.New(), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_SyntheticRun(t *testing.T) {
	out, _, err := execute(t, "-t", "12.5", "-g", "2", "--evaluator", "synthetic", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "G( 0) -1, 11.875000, ")
	assert.Contains(t, out, "K = 1\n")
}

func TestRoot_MissingTarget(t *testing.T) {
	_, stderr, err := execute(t, "--evaluator", "synthetic")
	require.Error(t, err)
	assert.Contains(t, stderr, "target is required")
}

func TestConfigCmd_MergesFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: \"7005\"\ngram: 3\nformat: json\n"), 0o600))

	out, _, err := execute(t, "config", "--config", path, "-c", "16")
	require.NoError(t, err)

	var cfg config.RunConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "7005", cfg.Target)
	assert.Equal(t, 3, cfg.CountGram)
	assert.Equal(t, 16, cfg.SamplesPerInterval)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, config.DefaultDebugFlags, cfg.DebugFlags)
}
