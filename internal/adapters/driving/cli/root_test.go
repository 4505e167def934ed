package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

type mockLinkerService struct {
	report *domain.RunReport
	err    error
	gotReq driving.LinkRequest
}

func (m *mockLinkerService) Run(_ context.Context, req driving.LinkRequest) (*domain.RunReport, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

type mockFixService struct {
	report *domain.RunReport
	err    error
	gotReq driving.FixRequest
}

func (m *mockFixService) Fix(_ context.Context, req driving.FixRequest) (*domain.RunReport, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

type mockBOMService struct {
	bom    *domain.BOM
	err    error
	gotReq driving.BOMRequest
}

func (m *mockBOMService) Export(_ context.Context, req driving.BOMRequest) (*domain.BOM, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.bom, nil
}

type mockImportService struct {
	count   int
	err     error
	gotPath string
}

func (m *mockImportService) Import(_ context.Context, path string) (int, error) {
	m.gotPath = path
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

type mockSettingsService struct {
	settings domain.AppSettings
	entries  []driving.Setting
	path     string

	setKey, setValue string
	setErr           error
	validateErr      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey, m.setValue = key, value
	return m.setErr
}

func (m *mockSettingsService) List() ([]driving.Setting, error) {
	return m.entries, nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Validate() error { return m.validateErr }

func (m *mockSettingsService) Path() string { return m.path }

// sampleReport builds the report mocks hand back: one of each
// outcome kind.
func sampleReport() *domain.RunReport {
	report := &domain.RunReport{
		ID:         "run-1",
		Schematic:  "board.kicad_sch",
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
	}
	report.Add(domain.ComponentOutcome{
		Reference: "C1",
		Decision:  domain.LeftUnchanged("already linked"),
	})
	report.Add(domain.ComponentOutcome{
		Reference: "R1",
		Query:     "10k 0603",
		Decision: domain.Matched(domain.Candidate{
			ID:          "C25804",
			Description: "10k 1% thick film resistor",
		}),
	})
	report.Add(domain.ComponentOutcome{
		Reference: "R2",
		Query:     "10k 0603",
		Decision:  domain.Skipped("ambiguous: 3 candidates"),
	})
	return report
}

// setupTestServices installs mock services and returns the cleanup
// restoring the unconfigured state. The returned mocks let tests
// inspect what the commands passed in.
func setupTestServices() (linker *mockLinkerService, fix *mockFixService, bom *mockBOMService, importer *mockImportService, settings *mockSettingsService, cleanup func()) {
	linker = &mockLinkerService{report: sampleReport()}
	fix = &mockFixService{report: sampleReport()}
	bom = &mockBOMService{bom: &domain.BOM{
		Schematic: "board.kicad_sch",
		Lines: []domain.BOMLine{
			{References: []string{"C1"}, Quantity: 1, Value: "100nF", Footprint: "C_0402_1005Metric", SupplierID: "C1525"},
			{References: []string{"R1", "R2"}, Quantity: 2, Value: "10k", Footprint: "R_0603_1608Metric", SupplierID: "C25804"},
		},
	}}
	importer = &mockImportService{count: 42}
	settings = &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		entries: []driving.Setting{
			{Key: "api.base_url", Value: "https://jlcpcb.com"},
			{Key: "api.page_size", Value: "10"},
		},
		path: "/home/test/.partlink/config.toml",
	}

	SetDependencies(&Dependencies{
		NewLinker: func(_ LinkerOptions) (driving.LinkerService, func() error, error) {
			return linker, func() error { return nil }, nil
		},
		NewImporter: func() (driving.ImportService, func() error, error) {
			return importer, func() error { return nil }, nil
		},
		Fix:      fix,
		BOM:      bom,
		Settings: settings,
	})

	cleanup = func() {
		SetDependencies(&Dependencies{})
	}
	return linker, fix, bom, importer, settings, cleanup
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "partlink", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSetDependencies_NilIsIgnored(t *testing.T) {
	_, _, _, _, _, cleanup := setupTestServices()
	defer cleanup()

	SetDependencies(nil)

	assert.NotNil(t, fixService)
}
