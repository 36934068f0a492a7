// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, delete, and total subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Kayz-mann/healthbridge/internal/manager"
	"github.com/Kayz-mann/healthbridge/internal/models"
)

var (
	workoutStart    string
	workoutEnd      string
	workoutDuration time.Duration
	workoutDistance float64
	workoutCalories float64
	workoutLimit    int
	totalField      string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Save, list, and delete workout records.

A workout carries a time window, duration, distance in meters, and energy
in kilocalories. Unrecognized activity types fall back to "running" on
save; stored activities this tool does not know format as "other".

COMMANDS:

  add      Save a new workout
  list     List workouts in a time range (end time descending)
  delete   Delete a workout by ID
  total    Sum distance or calories over a range`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <activity>",
	Short: "Save a workout",
	Long: `Save a workout session.

Examples:
  healthbridge workout add running --duration 45m --distance 8000 --calories 520
  healthbridge workout add yoga --start "2026-08-29 07:00" --duration 30m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseWhen(workoutStart)
		if err != nil {
			return err
		}

		dur := workoutDuration
		if dur == 0 {
			dur = 30 * time.Minute
		}

		end := start + dur.Seconds()
		if workoutEnd != "" {
			if end, err = parseWhen(workoutEnd); err != nil {
				return err
			}
		}

		id, err := mgr.SaveWorkout(cmd.Context(), models.WorkoutInput{
			StartTime:    start,
			EndTime:      end,
			Duration:     dur.Seconds(),
			Distance:     workoutDistance,
			Calories:     workoutCalories,
			ActivityType: args[0],
		})
		if err != nil {
			return fmt.Errorf("save workout: %w", err)
		}

		color.Green("✓ Saved %s workout", args[0])
		fmt.Printf("  ID: %s\n", id)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := rangeFlags()
		if err != nil {
			return err
		}

		workouts, err := mgr.QueryWorkouts(cmd.Context(), manager.QueryOptions{
			Start: start,
			End:   end,
			Limit: workoutLimit,
		})
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s %6.0fm %6.0fkcal\n",
				faint.Sprint(w.ID[:8]),
				faint.Sprint(formatEpoch(w.StartTime)),
				padRight(w.ActivityType, 14),
				w.Distance,
				w.Calories)
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout by ID",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.DeleteWorkout(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		color.Green("✓ Deleted workout %s", args[0])
		return nil
	},
}

var workoutTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Sum distance or calories over a range",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := rangeFlags()
		if err != nil {
			return err
		}

		switch totalField {
		case "distance":
			total, err := mgr.TotalDistance(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			fmt.Printf("%.0f m\n", total)
		case "calories":
			total, err := mgr.TotalCalories(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			fmt.Printf("%.0f kcal\n", total)
		default:
			return fmt.Errorf("unknown field %q (want distance or calories)", totalField)
		}
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutStart, "start", "", "start time (default now)")
	workoutAddCmd.Flags().StringVar(&workoutEnd, "end", "", "end time (default start+duration)")
	workoutAddCmd.Flags().DurationVar(&workoutDuration, "duration", 0, "duration (default 30m)")
	workoutAddCmd.Flags().Float64Var(&workoutDistance, "distance", 0, "distance in meters")
	workoutAddCmd.Flags().Float64Var(&workoutCalories, "calories", 0, "energy in kilocalories")

	workoutListCmd.Flags().StringVar(&rangeStart, "start", "", "range start")
	workoutListCmd.Flags().StringVar(&rangeEnd, "end", "", "range end")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max results (0 = all)")

	workoutTotalCmd.Flags().StringVar(&rangeStart, "start", "", "range start")
	workoutTotalCmd.Flags().StringVar(&rangeEnd, "end", "", "range end")
	workoutTotalCmd.Flags().StringVar(&totalField, "field", "distance", "distance or calories")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutTotalCmd)
	rootCmd.AddCommand(workoutCmd)
}
