package config_test

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turing/gram"
	"github.com/katalvlaran/turing/internal/config"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	v := newViper()
	v.Set(config.KeyTarget, "7005.0")

	cfg, err := config.Load(v)
	require.NoError(t, err)

	want := config.Default()
	want.Target = "7005.0"
	assert.Equal(t, want, cfg)
	assert.Equal(t, 6, cfg.Decimals())
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Parallel()

	v := newViper()
	v.SetConfigType("yaml")
	doc := []byte("target: \"100.123456789\"\ngram: 4\ncount: 16\nevaluator: synthetic\nformat: json\nlog_level: warn\n")
	require.NoError(t, v.ReadConfig(bytes.NewReader(doc)))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.CountGram)
	assert.Equal(t, 16, cfg.SamplesPerInterval)
	assert.Equal(t, config.EvaluatorSynthetic, cfg.Evaluator)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 9, cfg.Decimals(), "decimals follow the target when it is finer")
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	base := config.Default()
	base.Target = "100"
	require.NoError(t, base.Validate())

	cases := map[string]func(c *config.RunConfig){
		"missing target":  func(c *config.RunConfig) { c.Target = "" },
		"bad target":      func(c *config.RunConfig) { c.Target = "1e5" },
		"gram zero":       func(c *config.RunConfig) { c.CountGram = 0 },
		"gram too large":  func(c *config.RunConfig) { c.CountGram = 25 },
		"count too small": func(c *config.RunConfig) { c.SamplesPerInterval = 7 },
		"decimals":        func(c *config.RunConfig) { c.OutputDP = 61 },
		"bits":            func(c *config.RunConfig) { c.PrecisionBits = 64 },
		"threads":         func(c *config.RunConfig) { c.Threads = 9 },
		"evaluator":       func(c *config.RunConfig) { c.Evaluator = "mpfr" },
		"format":          func(c *config.RunConfig) { c.Format = "xml" },
		"log level":       func(c *config.RunConfig) { c.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		name, mutate := name, mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := base
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), gram.ErrConfig)
		})
	}
}

func TestLoad_InvalidFromViper(t *testing.T) {
	t.Parallel()

	v := newViper()
	_, err := config.Load(v)
	assert.ErrorIs(t, err, gram.ErrConfig)

	v.Set(config.KeyTarget, "10")
	v.Set(config.KeyThreads, "many")
	_, err = config.Load(v)
	assert.ErrorIs(t, err, gram.ErrConfig)
}
