package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [parts.xlsx]",
	Short: "Build the offline library from a parts spreadsheet",
	Long: `Indexes a supplier parts spreadsheet into the local library so that
link --offline can search without network access.

The library location comes from the library.dir setting. Re-importing
replaces existing entries part by part.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if newImporter == nil {
		return errors.New("importer not configured")
	}

	importer, closeLibrary, err := newImporter()
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer closeLibrary() //nolint:errcheck // Close failure doesn't undo the import

	cmd.Printf("Importing %s...\n", args[0])

	n, err := importer.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Indexed %d parts.\n", n)
	return nil
}
