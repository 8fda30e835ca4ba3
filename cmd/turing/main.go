// SPDX-License-Identifier: MIT
// Command turing runs Turing's method around a Gram point and prints the
// decision report.
//
// Configuration precedence: flags, then TURING_* environment variables,
// then the --config YAML file, then built-in defaults.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turing/internal/app"
	"github.com/katalvlaran/turing/internal/config"
	"github.com/katalvlaran/turing/internal/logging"
)

const envPrefix = "TURING"

func main() {
	if err := newRootCmd(viper.New(), os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags into v and returns the root command.
func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "turing",
		Short: "Verify zero counts between Gram points with Turing's method",
		Long: `turing samples Hardy's Z function across consecutive Gram intervals
starting at the Gram point at or below --target, counts sign changes,
flags Lehmer-like near misses and prints the number K of Gram blocks
that must satisfy Rosser's rule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfig(v, configPath)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(v, stderr)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			if _, err = app.Run(cfg, stdout, log); err != nil {
				log.WithError(err).Error("run failed")
				return err
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	fs := root.PersistentFlags()
	fs.StringP(config.KeyTarget, "t", "", "target height, decimal digits and '.' only (required)")
	fs.IntP(config.KeyCountGram, "g", config.DefaultCountGram, "number of Gram intervals (1..24)")
	fs.IntP(config.KeySamples, "c", config.DefaultSamples, "samples per Gram interval (8..128)")
	fs.IntP(config.KeyDecimals, "p", config.DefaultDecimals, "decimals of printed locations (2..60)")
	fs.IntP(config.KeyBits, "b", config.DefaultBits, "working precision in bits (128..1024)")
	fs.IntP(config.KeyDebugFlags, "d", config.DefaultDebugFlags, "debug flags handed to the precision context")
	fs.IntP(config.KeyThreads, "k", config.DefaultThreads, "evaluator threads (1..8)")
	fs.BoolP(config.KeyShowSeconds, "s", false, "print the compute time")
	fs.BoolP(config.KeyVerbose, "v", false, "print the full report and debug logs")
	fs.String(config.KeyEvaluator, config.EvaluatorRiemannSiegel, "Z evaluator: riemann-siegel or synthetic")
	fs.String(config.KeyFormat, "text", "report format: text, yaml or json")
	fs.String("log-level", "", "log level: debug, info, warn or error")

	bindFlags(v, fs)
	root.AddCommand(newConfigCmd(v, stdout))

	return root
}

// bindFlags binds every flag to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	config.SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case "config":
			return
		case "log-level":
			_ = v.BindPFlag(config.KeyLogLevel, f)
		default:
			_ = v.BindPFlag(f.Name, f)
		}
	})
}

// readConfig merges an optional YAML file into v.
func readConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// load resolves the run configuration and its logger.
func load(v *viper.Viper, stderr io.Writer) (config.RunConfig, *logrus.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.RunConfig{}, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.Verbose, stderr)
	if err != nil {
		return config.RunConfig{}, nil, err
	}
	log.WithField("config", v.ConfigFileUsed()).Debug("configuration loaded")

	return cfg, log, nil
}

// newConfigCmd prints the effective configuration as YAML.
func newConfigCmd(v *viper.Viper, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.RunConfig
			if err := v.Unmarshal(&cfg); err != nil {
				return err
			}
			enc := yaml.NewEncoder(stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
