package main

import (
	"errors"
	"fmt"
	"os"

	bomfile "github.com/partlink-labs/partlink-cli/internal/adapters/driven/bom/file"
	configfile "github.com/partlink-labs/partlink-cli/internal/adapters/driven/config/file"
	"github.com/partlink-labs/partlink-cli/internal/adapters/driven/schematicstore"
	"github.com/partlink-labs/partlink-cli/internal/adapters/driving/cli"
	"github.com/partlink-labs/partlink-cli/internal/catalog/jlc"
	"github.com/partlink-labs/partlink-cli/internal/catalog/offline"
	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/core/services"
)

func main() {
	if err := wire(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

// wire builds the adapter graph and installs it into the cli package.
// Catalog backends open lazily so that commands that never search
// don't touch the network or the library files.
func wire() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	store := schematicstore.NewStore()

	newLinker := func(opts cli.LinkerOptions) (driving.LinkerService, func() error, error) {
		app, err := settingsService.Get()
		if err != nil {
			return nil, nil, err
		}
		catalog, err := openCatalog(app, opts)
		if err != nil {
			return nil, nil, err
		}
		linker := services.NewLinkerService(store, catalog, opts.Chooser, settingsService)
		return linker, catalog.Close, nil
	}

	newImporter := func() (driving.ImportService, func() error, error) {
		app, err := settingsService.Get()
		if err != nil {
			return nil, nil, err
		}
		if app.Library.Dir == "" {
			return nil, nil, errors.New("library.dir is not set; run 'partlink settings set library.dir <path>'")
		}
		library, err := offline.NewLibrary(offline.Config{
			Dir:      app.Library.Dir,
			PageSize: app.API.PageSize,
		})
		if err != nil {
			return nil, nil, err
		}
		return services.NewImporterService(library), library.Close, nil
	}

	cli.SetDependencies(&cli.Dependencies{
		NewLinker:   newLinker,
		NewImporter: newImporter,
		Fix:         services.NewFixService(store, settingsService),
		BOM:         services.NewBOMService(store, bomfile.NewWriter(), settingsService),
		Settings:    settingsService,
	})
	return nil
}

func openCatalog(app *domain.AppSettings, opts cli.LinkerOptions) (driven.CatalogSearcher, error) {
	if opts.Offline {
		if app.Library.Dir == "" {
			return nil, errors.New("library.dir is not set; run 'partlink import' first")
		}
		cfg := offline.Config{
			Dir:      app.Library.Dir,
			PageSize: app.API.PageSize,
		}
		if opts.PageSize > 0 {
			cfg.PageSize = opts.PageSize
		}
		return offline.NewLibrary(cfg)
	}

	cfg := jlc.ConfigFromSettings(app.API)
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	return jlc.NewClient(cfg), nil
}
