// Command rhprobe measures probe displacement of the Robin Hood map
// against plain linear probing for a generated key set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rhprobe",
		Short:         "Robin Hood map probe statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRunCommand())

	return root
}

func newRunCommand() *cobra.Command {
	var (
		configPath string
		flagCfg    = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill a map with generated keys and report displacement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}

			overrideChanged(cmd, &cfg, flagCfg)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			report, err := Probe(cfg, logger)
			if err != nil {
				return err
			}

			_, err = report.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.IntVar(&flagCfg.Keys, "keys", flagCfg.Keys, "number of keys")
	flags.StringVar(&flagCfg.Dist, "dist", flagCfg.Dist, "key distribution: uniform, sequential or clustered")
	flags.StringVar(&flagCfg.Hash, "hash", flagCfg.Hash, "hash function: maphash, xxhash or identity")
	flags.IntVar(&flagCfg.Capacity, "capacity", flagCfg.Capacity, "initial capacity (0 for default)")
	flags.Uint64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "key generator seed")
	flags.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level")

	return cmd
}

// overrideChanged copies the flags set on the command line over the config.
func overrideChanged(cmd *cobra.Command, cfg *Config, flagCfg Config) {
	flags := cmd.Flags()

	if flags.Changed("keys") {
		cfg.Keys = flagCfg.Keys
	}
	if flags.Changed("dist") {
		cfg.Dist = flagCfg.Dist
	}
	if flags.Changed("hash") {
		cfg.Hash = flagCfg.Hash
	}
	if flags.Changed("capacity") {
		cfg.Capacity = flagCfg.Capacity
	}
	if flags.Changed("seed") {
		cfg.Seed = flagCfg.Seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
