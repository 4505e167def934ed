package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
)

var (
	bomOutput          string
	bomIncludeUnlinked bool
)

var bomCmd = &cobra.Command{
	Use:   "bom [schematic]",
	Short: "Export a grouped bill of materials",
	Long: `Groups the schematic's symbols by value, footprint and part number
and exports the result in the column layout the assembly order flow
accepts. The extension of the output file picks the format (.xlsx or
.csv); without --output the table is only printed.

Groups without a part number are dropped unless --include-unlinked is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: runBOM,
}

func init() {
	bomCmd.Flags().StringVarP(&bomOutput, "output", "o", "", "write the export to this file")
	bomCmd.Flags().BoolVar(&bomIncludeUnlinked, "include-unlinked", false, "keep groups without a part number")
	rootCmd.AddCommand(bomCmd)
}

func runBOM(cmd *cobra.Command, args []string) error {
	if bomService == nil {
		return errors.New("bom service not configured")
	}

	req := driving.BOMRequest{
		SchematicPath:   args[0],
		OutputPath:      bomOutput,
		IncludeUnlinked: bomIncludeUnlinked,
	}

	bom, err := bomService.Export(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("bom export failed: %w", err)
	}

	printBOM(cmd, bom)

	if bomOutput != "" {
		cmd.Printf("Wrote %d lines to %s\n", len(bom.Lines), bomOutput)
	}
	return nil
}

func printBOM(cmd *cobra.Command, bom *domain.BOM) {
	if len(bom.Lines) == 0 {
		cmd.Println("No lines to export.")
		return
	}

	cmd.Println()
	for _, line := range bom.Lines {
		id := line.SupplierID
		if id == "" {
			id = "(unlinked)"
		}
		cmd.Printf("  %3dx %-12s %-10s %-40s %s\n",
			line.Quantity, line.Value, id, line.Footprint, strings.Join(line.References, ","))
	}
	cmd.Println()
	cmd.Printf("%d lines, %d linked.\n", len(bom.Lines), bom.Linked())
}
