package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
)

var (
	fixMap    string
	fixOutput string
	fixDryRun bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [schematic]",
	Short: "Apply a known reference-to-part mapping",
	Long: `Writes hand-collected part assignments into a schematic without
searching the catalog. The mapping file is a TOML table of reference
designators to part numbers:

  R1 = "C25804"
  C3 = "C1525"

Symbols that already carry a part number are left alone; references
not present in the schematic are reported at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVar(&fixMap, "map", "", "TOML file mapping references to part numbers (required)")
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "write the result to this file instead of in place")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "resolve and report without writing any file")
	_ = fixCmd.MarkFlagRequired("map") //nolint:errcheck // Flag is registered above
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	if fixService == nil {
		return errors.New("fix service not configured")
	}

	assignments, err := loadAssignments(fixMap)
	if err != nil {
		return err
	}

	req := driving.FixRequest{
		SchematicPath: args[0],
		OutputPath:    fixOutput,
		DryRun:        fixDryRun,
		Assignments:   assignments,
		// The whole point of fix is injecting properties, so absent
		// ones are created rather than skipped.
		MissingProperty: domain.MissingPropertySynthesize,
	}

	report, err := fixService.Fix(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	printReport(cmd, report)

	if !report.DryRun && report.Updated() > 0 {
		target := fixOutput
		if target == "" {
			target = args[0]
		}
		cmd.Printf("Wrote %d assignments to %s\n", report.Updated(), target)
	}
	return nil
}

// loadAssignments reads a reference-to-part-number table from a TOML
// file.
func loadAssignments(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var assignments map[string]string
	if err := toml.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("parse mapping file: %w", err)
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("mapping file %s has no assignments", path)
	}
	return assignments, nil
}
