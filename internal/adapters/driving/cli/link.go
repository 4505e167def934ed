package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/partlink-labs/partlink-cli/internal/adapters/driving/tui"
	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
)

var (
	linkOutput     string
	linkOverwrite  bool
	linkDryRun     bool
	linkBatch      bool
	linkAcceptTop  bool
	linkOffline    bool
	linkAddMissing bool
	linkLimit      int
	linkTUI        bool
)

var linkCmd = &cobra.Command{
	Use:   "link [schematic]",
	Short: "Resolve schematic symbols against the parts catalog",
	Long: `Walks every symbol in the schematic, searches the parts catalog for
its value and package, and writes the decided part number back into
the symbol's properties.

Runs interactively by default: each symbol's candidates are presented
for selection, re-query, manual entry or skip. With --batch nothing is
ever asked and only unambiguous results are committed (a sole
candidate, or the top one under --accept-top).`,
	Args: cobra.ExactArgs(1),
	RunE: runLink,
}

func init() {
	linkCmd.Flags().StringVarP(&linkOutput, "output", "o", "", "write the result to this file instead of in place")
	linkCmd.Flags().BoolVar(&linkOverwrite, "overwrite", false, "re-resolve symbols that already carry a part number")
	linkCmd.Flags().BoolVar(&linkDryRun, "dry-run", false, "resolve and report without writing any file")
	linkCmd.Flags().BoolVar(&linkBatch, "batch", false, "never prompt; commit only unambiguous results")
	linkCmd.Flags().BoolVar(&linkAcceptTop, "accept-top", false, "commit the first candidate without asking")
	linkCmd.Flags().BoolVar(&linkOffline, "offline", false, "search the locally imported library instead of the hosted catalog")
	linkCmd.Flags().BoolVar(&linkAddMissing, "add-missing", false, "add the part number property to symbols that lack it")
	linkCmd.Flags().IntVarP(&linkLimit, "limit", "n", 0, "maximum candidates per search (0 uses the configured page size)")
	linkCmd.Flags().BoolVar(&linkTUI, "tui", false, "use the full-screen picker for interactive choices")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	if newLinker == nil {
		return errors.New("linker not configured")
	}

	interactive := !linkBatch
	if interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode needs a terminal; re-run with --batch")
	}

	acceptTop := linkAcceptTop
	if !cmd.Flags().Changed("accept-top") && settingsService != nil {
		if app, err := settingsService.Get(); err == nil {
			acceptTop = app.Link.AcceptTop
		}
	}

	var chooser driven.Chooser
	if interactive {
		if linkTUI {
			chooser = tui.NewChooser()
		} else {
			chooser = NewPromptChooser(cmd.InOrStdin(), cmd.OutOrStdout())
		}
	}

	linker, closeCatalog, err := newLinker(LinkerOptions{
		Offline:  linkOffline,
		PageSize: linkLimit,
		Chooser:  chooser,
	})
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeCatalog() //nolint:errcheck // Close failure doesn't undo the run

	missing := domain.MissingPropertySkip
	if linkAddMissing {
		missing = domain.MissingPropertySynthesize
	}

	req := driving.LinkRequest{
		SchematicPath: args[0],
		OutputPath:    linkOutput,
		DryRun:        linkDryRun,
		Policy: domain.ResolutionPolicy{
			OverwriteExisting: linkOverwrite,
			Interactive:       interactive,
			AcceptTop:         acceptTop,
			MissingProperty:   missing,
		},
	}

	report, err := linker.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("link failed: %w", err)
	}

	printReport(cmd, report)

	if !report.DryRun && report.Updated() > 0 {
		target := req.OutputPath
		if target == "" {
			target = req.SchematicPath
		}
		cmd.Printf("Wrote %d assignments to %s\n", report.Updated(), target)
	}
	return nil
}

// printReport renders a run report as the end-of-run table: one row
// per component in file order, then the counters.
func printReport(cmd *cobra.Command, report *domain.RunReport) {
	cmd.Println()
	for _, o := range report.Outcomes {
		switch o.Decision.Kind {
		case domain.DecisionMatched:
			c := o.Decision.Candidate
			cmd.Printf("  %-8s %-10s %-10s %s\n", o.Reference, o.Decision.Kind, c.ID, c.Description)
		case domain.DecisionManualOverride:
			cmd.Printf("  %-8s %-10s %s\n", o.Reference, o.Decision.Kind, o.Decision.ManualID)
		default:
			cmd.Printf("  %-8s %-10s %s\n", o.Reference, o.Decision.Kind, o.Decision.Reason)
		}
	}
	cmd.Println()
	cmd.Printf("%d matched, %d manual, %d skipped, %d unchanged.\n",
		report.Count(domain.DecisionMatched),
		report.Count(domain.DecisionManualOverride),
		report.Count(domain.DecisionSkipped),
		report.Count(domain.DecisionLeftUnchanged))
	if report.DryRun {
		cmd.Println("Dry run: nothing was written.")
	}
}
