// ABOUTME: CLI commands for reading samples: latest values, sample lists,
// ABOUTME: sleep intervals, and scalar aggregates.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Kayz-mann/healthbridge/internal/models"
)

var (
	samplesLimit int
)

var latestCmd = &cobra.Command{
	Use:   "latest <type>",
	Short: "Read the most recent value of a kind",
	Long: `Read the most recent sample of a kind in its canonical unit.

Supported: weight, height, bodyfat, bmi, heartrate, restingheartrate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := strings.ToLower(args[0])
		sample, unit, err := latestSample(cmd.Context(), kind)
		if err != nil {
			return fmt.Errorf("latest %s: %w", kind, err)
		}

		fmt.Printf("%.4g %s", sample.Value, unit)
		color.New(color.Faint).Printf("  (%s)\n", formatEpoch(sample.EndTime))
		return nil
	},
}

func latestSample(ctx context.Context, kind string) (models.QuantitySample, string, error) {
	switch kind {
	case "weight":
		s, err := mgr.LatestWeight(ctx)
		return s, "kg", err
	case "height":
		s, err := mgr.LatestHeight(ctx)
		return s, "cm", err
	case "bodyfat":
		s, err := mgr.LatestBodyFat(ctx)
		return s, "%", err
	case "bmi":
		s, err := mgr.LatestBMI(ctx)
		return s, "", err
	case "heartrate":
		s, err := mgr.LatestHeartRate(ctx)
		return s, "bpm", err
	case "restingheartrate":
		s, err := mgr.RestingHeartRate(ctx)
		return s, "bpm", err
	default:
		return models.QuantitySample{}, "", fmt.Errorf("unsupported type %q", kind)
	}
}

var samplesCmd = &cobra.Command{
	Use:   "samples <type>",
	Short: "List samples of a kind in a time range",
	Long: `List samples of a kind, most recent first.

Supported: steps, heartrate, oxygen, sleep.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := rangeFlags()
		if err != nil {
			return err
		}

		kind := strings.ToLower(args[0])
		if kind == "sleep" {
			return printSleep(cmd.Context(), start, end)
		}

		var samples []models.QuantitySample
		switch kind {
		case "steps":
			samples, err = mgr.StepSamples(cmd.Context(), start, end, samplesLimit)
		case "heartrate":
			samples, err = mgr.HeartRateSamples(cmd.Context(), start, end, samplesLimit)
		case "oxygen":
			samples, err = mgr.OxygenSaturationSamples(cmd.Context(), start, end, samplesLimit)
		default:
			return fmt.Errorf("unsupported type %q", kind)
		}
		if err != nil {
			return fmt.Errorf("samples %s: %w", kind, err)
		}

		if len(samples) == 0 {
			fmt.Println("No samples found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range samples {
			fmt.Printf("%s %s %.4g\n",
				faint.Sprint(s.ID[:8]),
				faint.Sprint(formatEpoch(s.StartTime)),
				s.Value)
		}
		return nil
	},
}

func printSleep(ctx context.Context, start, end float64) error {
	samples, err := mgr.SleepSamples(ctx, start, end, samplesLimit)
	if err != nil {
		return fmt.Errorf("sleep samples: %w", err)
	}

	if len(samples) == 0 {
		fmt.Println("No sleep samples found.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, s := range samples {
		fmt.Printf("%s %s %s %5.0f min\n",
			faint.Sprint(s.ID[:8]),
			faint.Sprint(formatEpoch(s.StartTime)),
			padRight(string(s.Stage), 8),
			s.Duration/60)
	}
	return nil
}

var totalCmd = &cobra.Command{
	Use:   "sum <type>",
	Short: "Sum samples of a kind over a time range",
	Long: `Sum samples of a kind over [start, end).

Supported: steps, flights, water.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := rangeFlags()
		if err != nil {
			return err
		}

		var total float64
		var unit string
		switch kind := strings.ToLower(args[0]); kind {
		case "steps":
			total, err = mgr.StepCount(cmd.Context(), start, end)
			unit = "steps"
		case "flights":
			total, err = mgr.FlightsClimbed(cmd.Context(), start, end)
			unit = "flights"
		case "water":
			total, err = mgr.WaterIntake(cmd.Context(), start, end)
			unit = "ml"
		default:
			return fmt.Errorf("unsupported type %q", kind)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%.0f %s\n", total, unit)
		return nil
	},
}

func init() {
	samplesCmd.Flags().StringVar(&rangeStart, "start", "", "range start")
	samplesCmd.Flags().StringVar(&rangeEnd, "end", "", "range end")
	samplesCmd.Flags().IntVarP(&samplesLimit, "limit", "n", 50, "max results (0 = all)")

	totalCmd.Flags().StringVar(&rangeStart, "start", "", "range start")
	totalCmd.Flags().StringVar(&rangeEnd, "end", "", "range end")

	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(totalCmd)
}
