// Command kiwibot plans optimal kiwiberry harvest routes over a hex-grid
// orchard and renders or serves the results.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/kiwibot/internal/farm"
	"github.com/talgya/kiwibot/internal/search"
)

var (
	rootCmd = &cobra.Command{
		Use:   "kiwibot",
		Short: "Optimal harvest-route planner for hex-grid kiwiberry farms",
		Long: `kiwibot plans the shortest route that harvests every fruit plot on a
hexagonal farm and hauls the crop back to collection stations, respecting
the picker's basket mass and volume limits.`,
	}

	farmPath string
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&farmPath, "farm", "f", "",
		"farm YAML file (default: built-in reference farm)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)
	}
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: l,
	}))
	slog.SetDefault(logger)
}

// loadFarm builds the farm from --farm, or the built-in reference farm.
func loadFarm() (*farm.Farm, error) {
	cfg := farm.DefaultConfig()
	if farmPath != "" {
		var err error
		cfg, err = farm.LoadConfig(farmPath)
		if err != nil {
			return nil, err
		}
	}
	return farm.New(cfg)
}

func exitErr(err error) {
	slog.Error("kiwibot failed", "error", err)
	os.Exit(exitCode(err))
}

// exitCode maps unsolvable farms to a distinct status so scripts can tell
// "no route exists" apart from usage and config mistakes.
func exitCode(err error) int {
	if errors.Is(err, search.ErrNoSolution) {
		return 2
	}
	return 1
}
