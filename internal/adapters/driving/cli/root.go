// Package cli implements the partlink command-line interface using
// cobra. Commands call core services through the driving ports; the
// services themselves are wired up in main and installed here via
// SetDependencies.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verboseFlag holds the global --verbose flag value.
var verboseFlag bool

// LinkerOptions selects the catalog backend and interactive surface
// for one link run.
type LinkerOptions struct {
	// Offline searches the locally imported library instead of the
	// hosted catalog.
	Offline bool

	// PageSize overrides the configured candidate page size when
	// positive.
	PageSize int

	// Chooser collects interactive decisions. Nil for batch runs.
	Chooser driven.Chooser
}

// LinkerFactory builds a linker for one run. The returned close
// function releases the catalog backend when the run is done.
type LinkerFactory func(opts LinkerOptions) (driving.LinkerService, func() error, error)

// ImporterFactory opens the offline library for writing. The returned
// close function releases it.
type ImporterFactory func() (driving.ImportService, func() error, error)

// Dependencies holds the wired-up services the commands call.
type Dependencies struct {
	NewLinker   LinkerFactory
	NewImporter ImporterFactory
	Fix         driving.FixService
	BOM         driving.BOMService
	Settings    driving.SettingsService
}

var (
	newLinker       LinkerFactory
	newImporter     ImporterFactory
	fixService      driving.FixService
	bomService      driving.BOMService
	settingsService driving.SettingsService
)

// SetDependencies installs the services the commands use.
func SetDependencies(deps *Dependencies) {
	if deps == nil {
		return
	}
	newLinker = deps.NewLinker
	newImporter = deps.NewImporter
	fixService = deps.Fix
	bomService = deps.BOM
	settingsService = deps.Settings
}

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "partlink",
	Short: "Link schematic symbols to supplier part numbers",
	Long: `Partlink matches the symbols in a KiCad schematic against the JLCPCB
parts catalog and writes the chosen part numbers back into the file.

Only the chosen properties change; every other byte of the schematic
is preserved exactly as the editor wrote it.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "print progress details to stderr")
}

// Execute runs the root command. Cobra prints the error; the caller
// only decides the exit code.
func Execute() error {
	return rootCmd.Execute()
}
