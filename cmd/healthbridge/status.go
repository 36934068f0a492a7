// ABOUTME: Availability probe and authorization commands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	authRead  string
	authWrite string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe store availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mgr.IsAvailable() {
			color.Green("✓ Store available")
			return nil
		}
		color.Red("✗ Store unavailable")
		return nil
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Request read/write authorization for data types",
	Long: `Request user consent for sets of data type identifiers.

Identifiers are case-insensitive and alias-aware ("calories" and
"activeEnergyBurned" name the same kind). Unknown identifiers are
silently dropped from the request. The per-type outcome is not queryable
afterward; only failure of the request itself is reported.

Examples:
  healthbridge auth --read steps,heartRate,sleep --write water,weight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		read := splitTypes(authRead)
		write := splitTypes(authWrite)
		if len(read) == 0 && len(write) == 0 {
			return fmt.Errorf("nothing to authorize: pass --read and/or --write")
		}

		if err := mgr.RequestAuthorization(cmd.Context(), read, write); err != nil {
			return fmt.Errorf("request authorization: %w", err)
		}

		color.Green("✓ Authorization requested (%d read, %d write)",
			len(read), len(write))
		return nil
	},
}

func splitTypes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	authCmd.Flags().StringVar(&authRead, "read", "", "comma-separated read types")
	authCmd.Flags().StringVar(&authWrite, "write", "", "comma-separated write types")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(authCmd)
}
