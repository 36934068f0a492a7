// ABOUTME: Root Cobra command for the healthbridge CLI.
// ABOUTME: Handles store/manager lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kayz-mann/healthbridge/internal/config"
	"github.com/Kayz-mann/healthbridge/internal/manager"
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

var (
	verbose     bool
	healthStore store.Store
	mgr         *manager.Manager

	// Shared time-range flags for list/aggregate commands.
	rangeStart string
	rangeEnd   string
)

// rangeFlags parses the shared --start/--end flags. Both default to an
// open bound.
func rangeFlags() (float64, float64, error) {
	var start, end float64
	var err error
	if rangeStart != "" {
		if start, err = parseWhen(rangeStart); err != nil {
			return 0, 0, err
		}
	}
	if rangeEnd != "" {
		if end, err = parseWhen(rangeEnd); err != nil {
			return 0, 0, err
		}
	}
	return start, end, nil
}

var rootCmd = &cobra.Command{
	Use:   "healthbridge",
	Short: "Health-store access layer CLI",
	Long: `Healthbridge adapts a local health sample store behind a small set of
canonical data type and activity type identifiers.

WHAT IT COVERS:

  Workouts       save, list, delete, total distance / calories
  Activity       steps, flights climbed
  Body           height, weight, body fat, BMI
  Vitals         heart rate, oxygen saturation, blood pressure
  Sleep          interval samples with stage classification
  Nutrition      water, caffeine, protein, carbs, fat

QUICK START:

  $ healthbridge status                          # Probe store availability
  $ healthbridge auth --read steps,heartRate     # Request consent
  $ healthbridge workout add running --duration 30m --distance 5000
  $ healthbridge workout list
  $ healthbridge add weight 82.5                 # Log a measurement
  $ healthbridge latest weight

DATA STORAGE:

  The store backend ("sqlite" by default, "badger" optional) and its data
  directory come from ~/.config/healthbridge/config.json. All records are
  owned by the store; this tool never caches them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		healthStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		log := zap.NewNop()
		if verbose {
			if log, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
		}

		mgr = manager.New(healthStore, manager.WithLogger(log))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if healthStore != nil {
			return healthStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// parseWhen parses a time argument: RFC3339, "2006-01-02 15:04",
// "2006-01-02", or raw epoch seconds. Empty means now.
func parseWhen(s string) (float64, error) {
	if s == "" {
		return models.TimeToEpoch(time.Now()), nil
	}
	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		return sec, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return models.TimeToEpoch(t), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q", s)
}

// formatEpoch renders boundary epoch seconds for display.
func formatEpoch(sec float64) string {
	if sec == 0 {
		return "-"
	}
	return models.EpochToTime(sec).Local().Format("2006-01-02 15:04")
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
