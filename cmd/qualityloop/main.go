// Command qualityloop computes steady-state outputs of quality
// recycling/crafting loops.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/params"
	"github.com/katalvlaran/qualityloop/quality"
)

const (
	envLogLevel  = "QUALITYLOOP_LOG_LEVEL"
	envCacheSize = "QUALITYLOOP_CACHE_SIZE"
)

var (
	// Global flags
	verbose     bool
	showMetrics bool
	cacheSize   int
	maxIter     int

	logger   *zap.Logger
	registry *prometheus.Registry
	builder  *quality.Builder
)

var rootCmd = &cobra.Command{
	Use:   "qualityloop",
	Short: "Steady-state calculator for quality recycling loops",
	Long: `qualityloop models a production/recycling loop as an absorbing Markov
chain over the five quality tiers (normal, uncommon, rare, epic, legendary)
and prints the total flow per tier for a given input.

For kept tiers the value is the production rate; for recycled tiers it is the
internal flow of the loop.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		var err error
		if logger, err = newLogger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if !cmd.Flags().Changed("cache-size") {
			if v, ok := os.LookupEnv(envCacheSize); ok {
				if cacheSize, err = strconv.Atoi(v); err != nil {
					return fmt.Errorf("%s=%q: %w", envCacheSize, v, err)
				}
			}
		}
		cache, err := newCache(cacheSize)
		if err != nil {
			return err
		}
		builder = quality.NewBuilder(quality.WithCache(cache), quality.WithLogger(logger))
		registry = prometheus.NewRegistry()
		registry.MustRegister(builder.Collectors()...)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			defer func() { _ = logger.Sync() }()
		}
		if showMetrics && registry != nil {
			return writeMetrics(cmd.OutOrStdout(), registry)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print cache metrics after the command")
	rootCmd.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "Bounded matrix cache size (0 = unbounded)")
	rootCmd.PersistentFlags().IntVar(&maxIter, "max-iterations", loop.DefaultMaxIterations, "Iteration ceiling per loop")

	rootCmd.AddCommand(probCmd, matrixCmd, recyclerCmd, crusherCmd, assemblerCmd, sweepCmd, runCmd)
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if lvl, ok := os.LookupEnv(envLogLevel); ok {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", envLogLevel, lvl, err)
		}
		config.Level = zap.NewAtomicLevelAt(parsed)
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newCache(size int) (quality.Cache, error) {
	if size <= 0 {
		return quality.NewMapCache(), nil
	}

	return quality.NewLRUCache(size)
}

// newCalculator binds the shared builder to the current loop flags.
func newCalculator(extra ...loop.Option) *params.Calculator {
	opts := append([]loop.Option{loop.WithMaxIterations(maxIter), loop.WithLogger(logger)}, extra...)

	return params.NewCalculator(builder, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
