// ABOUTME: CLI command for saving measurements in canonical units.
// ABOUTME: Dispatches on the data type identifier, bp takes two values.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addAt string

var addCmd = &cobra.Command{
	Use:   "add <type> <value> [value2]",
	Short: "Save a measurement",
	Long: `Save one measurement in its canonical unit.

SUPPORTED TYPES:

  weight <kg>          height <cm>         bodyfat <percent 0-100>
  water <ml>           caffeine <mg>       protein|carbs|fat <g>
  heartrate <bpm>      steps <count>       sleep <stage value>
  bp <systolic> <diastolic>   (both mmHg)

Examples:
  healthbridge add weight 82.5
  healthbridge add bp 120 80
  healthbridge add water 330 --at "2026-08-29 08:00"`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseWhen(addAt)
		if err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}

		kind := strings.ToLower(args[0])
		if kind == "bp" {
			if len(args) != 3 {
				return fmt.Errorf("bp needs systolic and diastolic values")
			}
			dia, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[2])
			}
			if err := mgr.SaveBloodPressure(cmd.Context(), value, dia, at, at); err != nil {
				return fmt.Errorf("save blood pressure: %w", err)
			}
			color.Green("✓ Saved bp %.0f/%.0f mmHg", value, dia)
			return nil
		}

		id, err := saveMeasurement(cmd.Context(), kind, value, at)
		if err != nil {
			return fmt.Errorf("save %s: %w", kind, err)
		}

		color.Green("✓ Saved %s %.4g", kind, value)
		fmt.Printf("  ID: %s\n", id[:8])
		return nil
	},
}

func saveMeasurement(ctx context.Context, kind string, value, at float64) (string, error) {
	switch kind {
	case "weight":
		return mgr.SaveWeight(ctx, value, at)
	case "height":
		return mgr.SaveHeight(ctx, value, at)
	case "bodyfat":
		return mgr.SaveBodyFat(ctx, value, at)
	case "water":
		return mgr.SaveWater(ctx, value, at)
	case "caffeine":
		return mgr.SaveCaffeine(ctx, value, at)
	case "protein":
		return mgr.SaveProtein(ctx, value, at)
	case "carbs":
		return mgr.SaveCarbs(ctx, value, at)
	case "fat":
		return mgr.SaveFat(ctx, value, at)
	case "heartrate":
		return mgr.SaveHeartRate(ctx, value, at)
	case "steps":
		return mgr.SaveSteps(ctx, value, at, at)
	case "sleep":
		return mgr.SaveSleep(ctx, int(value), at, at+1)
	default:
		return "", fmt.Errorf("unsupported type %q", kind)
	}
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "measurement time (default now)")
	rootCmd.AddCommand(addCmd)
}
